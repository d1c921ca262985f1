package model

type Contractor struct {
	Id              uint     `gorm:"primaryKey"`
	TelegramId      string   `gorm:"column:telegram_id;type:text;index"`
	FirstName       *string  `gorm:"type:text"`
	LastName        *string  `gorm:"type:text"`
	Email           *string  `gorm:"type:text"`
	Username        *string  `gorm:"type:text"`
	AdminPayRate    *float64 `gorm:"column:admin_pay_rate;type:numeric(10,2)"`
	IsCisRegistered *string  `gorm:"column:is_cis_registered;type:text"`
	Status          string   `gorm:"type:text;not null;default:'pending';index"`
}

func (Contractor) TableName() string {
	return "contractor_applications"
}
