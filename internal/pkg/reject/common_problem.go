package reject

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	genericUnexpectedError string = "error.generic.unexpected"
	cannotParseParams      string = "error.generic.cannot-parse-params"
	invalidRequest         string = "error.generic.invalid-request-payload"
	cannotParseBody        string = "error.generic.cannot-parse-payload"
	genericNotFound        string = "error.generic.not-found"

	imageTypeInvalid     string = "error.profile.image-type-invalid"
	imageTooLarge        string = "error.profile.image-too-large"
	imageUploadFailed    string = "error.profile.image-upload-failed"
	walletAddressInvalid string = "error.profile.wallet-address-invalid"
)

func RequestValidationProblem() Problem {
	return NewProblem().
		WithTitle("Invalid request payload").
		WithStatus(http.StatusBadRequest).
		WithCode(invalidRequest).
		Build()
}

func RequestParamsProblem() Problem {
	return NewProblem().
		WithTitle("Invalid request parameters").
		WithStatus(http.StatusBadRequest).
		WithCode(cannotParseParams).
		Build()
}

func BodyParseProblem() Problem {
	return NewProblem().
		WithTitle("Cannot read payload").
		WithStatus(http.StatusBadRequest).
		WithCode(cannotParseBody).
		Build()
}

func NotFoundProblem() Problem {
	return NewProblem().
		WithTitle("Record not found").
		WithStatus(http.StatusNotFound).
		WithCode(genericNotFound).
		Build()
}

func UnexpectedProblem(err error) Problem {
	log.Warn().Err(err).Msg("Unexpected error while handling request: " + err.Error())
	return NewProblem().
		WithTitle("Unexpected error").
		WithStatus(http.StatusInternalServerError).
		WithCode(genericUnexpectedError).
		Build()
}

func ImageTypeProblem(mimeType string) Problem {
	return NewProblem().
		WithTitle("Selected file is not an image").
		WithStatus(http.StatusBadRequest).
		WithCode(imageTypeInvalid).
		WithDetail("unsupported content type " + mimeType).
		Build()
}

func ImageTooLargeProblem() Problem {
	return NewProblem().
		WithTitle("Image size must be less than 5MB").
		WithStatus(http.StatusBadRequest).
		WithCode(imageTooLarge).
		Build()
}

func ImageUploadProblem(err error) Problem {
	log.Warn().Err(err).Msg("Image host upload failed")
	return NewProblem().
		WithTitle("Image upload failed").
		WithStatus(http.StatusBadGateway).
		WithCode(imageUploadFailed).
		Build()
}

func WalletAddressProblem() Problem {
	return NewProblem().
		WithTitle("Invalid Ethereum address format").
		WithStatus(http.StatusBadRequest).
		WithCode(walletAddressInvalid).
		Build()
}
