package postgres

import "time"

// PersonModel é o model GORM para a tabela users
type PersonModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(60);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	Position  string    `gorm:"type:varchar(50);not null;index"`
	Photo     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (PersonModel) TableName() string {
	return "users"
}
