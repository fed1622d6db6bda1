package dto

// EncryptResponse carries an encrypted payload.
type EncryptResponse struct {
	Payload string `json:"payload"`
}

// DecryptResponse carries recovered plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// HashResponse carries a "salt:hash" password hash.
type HashResponse struct {
	Hash string `json:"hash"`
}

// VerifyResponse reports whether a password matched.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// RandomResponse carries a hex-encoded random value.
type RandomResponse struct {
	Value string `json:"value"`
}
