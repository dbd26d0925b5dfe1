package model

import "encoding/json"

// ExternalSystemType enum constants
const (
	ExternalSystemTypeAccounting = "Contábil"
	ExternalSystemTypeBidding    = "Licitações"
	ExternalSystemTypeWarehouse  = "Almoxarifado"
	ExternalSystemTypePatrimony  = "Patrimônio"
	ExternalSystemTypeOther      = "Outro"
)

// ExternalSystem is a third-party system the office integrates with.
type ExternalSystem struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Type        string `gorm:"type:varchar(50);not null" json:"type"`
	APIURL      string `gorm:"column:api_url;type:varchar(255);not null" json:"apiUrl"`
	AccessToken string `gorm:"type:text;not null" json:"accessToken"`
	TokenType   string `gorm:"type:varchar(50);not null" json:"tokenType"`
}

// AppConfig is a key/value store for small singleton settings (custom
// permission table, login-screen image URL). Values are raw JSON so callers
// decide the shape.
type AppConfig struct {
	Key   string          `gorm:"type:varchar(255);primaryKey" json:"key"`
	Value json.RawMessage `gorm:"type:jsonb" json:"value"`
}
