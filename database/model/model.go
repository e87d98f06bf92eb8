package model

// User is the single persisted entity: an account with its credential hash,
// the accrued reputation score, and an optionally linked Stellar wallet.
type User struct {
	Id              int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email           string  `json:"email" gorm:"uniqueIndex"`
	Password        string  `json:"-"`
	ReputationScore int     `json:"reputationScore" gorm:"default:0"`
	StellarAddress  *string `json:"stellarAddress" gorm:"uniqueIndex"`
}
