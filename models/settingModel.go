package models

// Setting is a single key/value row. The only key in use today is the
// admin-configurable UPI receiving ID.
type Setting struct {
	KeyName string `json:"keyName" gorm:"primaryKey;size:64"`
	Value   string `json:"value"`
}

const SettingUPIID = "upi_id"
