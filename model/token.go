package model

const (
	BucketToken    = "token"
	BucketCooldown = "cooldown"
	TokenLength    = 32
)

// Token ties a minted draw token to the invitation code that produced it.
// CreatedAt is in unix milliseconds. The record is never mutated; the
// token's draw times live in BucketCooldown.
type Token struct {
	Token          string `json:"token"`
	InvitationCode string `json:"invitationCode"`
	CreatedAt      int64  `json:"createdAt"`
}

// TokenIssuance is the successful result of issuing a token. ResetIn is the
// number of seconds until the oldest issuance in the current window leaves
// it; LeftCount is how many more tokens the code may still mint.
type TokenIssuance struct {
	Token     string `json:"token"`
	ResetIn   int64  `json:"resetIn"`
	LeftCount int    `json:"leftCount"`
}
