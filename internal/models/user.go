package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered user of the app.
type User struct {
	Model
	Name          string          `json:"nome"`
	Email         string          `json:"email" gorm:"uniqueIndex"`
	PasswordHash  string          `json:"-"`
	MonthlySalary decimal.Decimal `json:"salario_mensal" gorm:"type:DECIMAL(20,8)"`
}

func (User) TableName() string {
	return "usuarios"
}

// SetPassword hashes the cleartext password with bcrypt and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if u.MonthlySalary.IsNegative() {
		return ErrSalaryNegative
	}

	return nil
}
