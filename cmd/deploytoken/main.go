// Command deploytoken deploys the SHARP token contract and verifies the
// deployment by reading the token metadata back from the chain. It is a
// one-shot operator tool, not a runtime component of the backend.
package main

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type contractArtifact struct {
	Abi      json.RawMessage `json:"abi"`
	Bytecode string          `json:"bytecode"`
}

type deploymentInfo struct {
	ChainId         int64  `json:"chainId"`
	ContractAddress string `json:"contractAddress"`
	DeployerAddress string `json:"deployerAddress"`
	TxHash          string `json:"txHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	Timestamp       string `json:"timestamp"`
	PolygonscanUrl  string `json:"polygonscanUrl"`
}

func main() {
	setupViper()
	setupZerolog()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	chainId := viper.GetInt64("CHAIN_ID")
	confirmations := viper.GetUint64("DEPLOY_CONFIRMATIONS")
	if confirmations == 0 {
		confirmations = 5
	}

	artifact := loadArtifact(viper.GetString("TOKEN_ARTIFACT_PATH"))
	parsedAbi, err := abi.JSON(strings.NewReader(string(artifact.Abi)))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot parse contract ABI")
	}

	client, err := ethclient.Dial(viper.GetString("RPC_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot connect to RPC endpoint")
	}
	defer client.Close()

	keyHex := strings.TrimPrefix(viper.GetString("DEPLOYER_PRIVATE_KEY"), "0x")
	deployerKey, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot parse deployer private key")
	}
	deployerAddress := crypto.PubkeyToAddress(deployerKey.PublicKey)

	balance, err := client.BalanceAt(ctx, deployerAddress, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read deployer balance")
	}
	log.Info().
		Str("deployer", deployerAddress.Hex()).
		Str("balance", balance.String()).
		Msg("Deploying SharpToken")

	transactor, err := bind.NewKeyedTransactorWithChainID(deployerKey, big.NewInt(chainId))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot build transactor")
	}

	address, tx, contract, err := bind.DeployContract(transactor, parsedAbi, common.FromHex(artifact.Bytecode), client)
	if err != nil {
		log.Fatal().Err(err).Msg("Contract deployment failed")
	}
	log.Info().
		Str("address", address.Hex()).
		Str("txHash", tx.Hash().Hex()).
		Msg("Deployment transaction sent")

	if _, err := bind.WaitDeployed(ctx, client, tx); err != nil {
		log.Fatal().Err(err).Msg("Deployment transaction not mined")
	}

	receipt, err := client.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read deployment receipt")
	}
	waitForConfirmations(ctx, client, receipt.BlockNumber.Uint64(), confirmations)

	name := callString(contract, "name")
	symbol := callString(contract, "symbol")
	totalSupply := callBigInt(contract, "totalSupply")
	log.Info().
		Str("name", name).
		Str("symbol", symbol).
		Str("totalSupply", formatEther(totalSupply)).
		Msg("Contract verified on chain")

	info := deploymentInfo{
		ChainId:         chainId,
		ContractAddress: address.Hex(),
		DeployerAddress: deployerAddress.Hex(),
		TxHash:          tx.Hash().Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		PolygonscanUrl:  "https://polygonscan.com/address/" + address.Hex(),
	}
	encoded, _ := json.MarshalIndent(info, "", "  ")
	if err := os.WriteFile("deployment-info.json", encoded, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Cannot write deployment-info.json")
	}
	log.Info().Str("polygonscanUrl", info.PolygonscanUrl).Msg("Deployment complete")
}

func loadArtifact(path string) contractArtifact {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read contract artifact")
	}
	var artifact contractArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		log.Fatal().Err(err).Msg("Cannot parse contract artifact")
	}
	return artifact
}

func waitForConfirmations(ctx context.Context, client *ethclient.Client, minedAt uint64, confirmations uint64) {
	for {
		head, err := client.BlockNumber(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot read chain head while waiting for confirmations")
		}
		if head >= minedAt+confirmations {
			return
		}
		log.Info().
			Uint64("head", head).
			Uint64("target", minedAt+confirmations).
			Msg("Waiting for confirmations")
		select {
		case <-ctx.Done():
			log.Fatal().Err(ctx.Err()).Msg("Timed out waiting for confirmations")
		case <-time.After(5 * time.Second):
		}
	}
}

func callString(contract *bind.BoundContract, method string) string {
	var out []any
	if err := contract.Call(&bind.CallOpts{}, &out, method); err != nil {
		log.Fatal().Err(err).Msg("Contract call failed: " + method)
	}
	return out[0].(string)
}

func callBigInt(contract *bind.BoundContract, method string) *big.Int {
	var out []any
	if err := contract.Call(&bind.CallOpts{}, &out, method); err != nil {
		log.Fatal().Err(err).Msg("Contract call failed: " + method)
	}
	return out[0].(*big.Int)
}

func formatEther(wei *big.Int) string {
	value := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(1e18))
	return value.Text('f', 2)
}

func setupViper() {
	viper.AutomaticEnv()
	viper.SetConfigFile("./.env")
}

func setupZerolog() {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
