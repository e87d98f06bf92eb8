// Package entity defines the JSON request and response bodies of the API.
package entity

// CredentialsRequest is the body of both /auth/register and /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActionRequest names a reputation action to perform.
type ActionRequest struct {
	Action string `json:"action"`
}

// ConnectWalletRequest links a Stellar account to the caller.
type ConnectWalletRequest struct {
	PublicKey string `json:"publicKey"`
}

// SubmitTxRequest carries a signed transaction envelope to relay.
type SubmitTxRequest struct {
	SignedXdr string `json:"signedXdr"`
}

// PublicUser is the client-visible slice of a user record. The password
// hash never appears here.
type PublicUser struct {
	Id              int    `json:"id"`
	Email           string `json:"email"`
	ReputationScore int    `json:"reputationScore"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserId  int    `json:"userId"`
}

// ActionResponse reports an applied reputation action.
type ActionResponse struct {
	Success     bool `json:"success"`
	AddedPoints int  `json:"addedPoints"`
	TotalScore  int  `json:"totalScore"`
}

// BalanceResponse reports the native balance of the linked wallet.
type BalanceResponse struct {
	Balance string `json:"balance"`
	Network string `json:"network"`
}
