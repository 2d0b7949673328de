package model

// ProfileSnapshot is the in-memory authoritative view of one user's profile
// for the active session. The engine owns it; the document store holds the
// durable copy under the same field names.
type ProfileSnapshot struct {
	Uid           string  `json:"uid" firestore:"uid"`
	Email         string  `json:"email" firestore:"email"`
	Username      string  `json:"username" firestore:"username"`
	PhotoURL      string  `json:"photoUrl" firestore:"photoURL"`
	WalletAddress string  `json:"walletAddress" firestore:"walletAddress"`
	ManualWallet  bool    `json:"manualWallet" firestore:"manualWallet"`
	BestScore     int64   `json:"bestScore" firestore:"bestScore"`
	DailyStreak   int64   `json:"dailyStreak" firestore:"dailyStreak"`
	TotalEarned   float64 `json:"totalEarned" firestore:"totalEarned"`
	TokensBalance float64 `json:"tokensBalance" firestore:"tokensBalance"`
	ReferralCode  string  `json:"referralCode" firestore:"referralCode"`
}
