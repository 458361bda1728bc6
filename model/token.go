package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/helper"
	"github.com/artloom/mediagate/common/logger"
)

const (
	TokenStatusEnabled  = 1
	TokenStatusDisabled = 2
)

type Token struct {
	Id           int    `json:"id"`
	Key          string `json:"key" gorm:"type:char(48);uniqueIndex"`
	Name         string `json:"name" gorm:"index"`
	Status       int    `json:"status" gorm:"default:1"`
	CreatedTime  int64  `json:"created_time" gorm:"bigint"`
	AccessedTime int64  `json:"accessed_time" gorm:"bigint"`
}

func (t *Token) Insert() error {
	return DB.Create(t).Error
}

func (t *Token) Update() error {
	return DB.Model(t).Select("name", "status", "accessed_time").Updates(t).Error
}

// ValidateToken resolves and checks an API key. The redis-backed cache in
// cache.go is consulted first so the hot path skips the database.
func ValidateToken(key string) (*Token, error) {
	if key == "" {
		return nil, errors.New("no token provided")
	}
	token, err := CacheGetTokenByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid token")
		}
		logger.SysError("failed to validate token: " + err.Error())
		return nil, errors.New("token validation failed")
	}
	if token.Status != TokenStatusEnabled {
		return nil, errors.New("token has been disabled")
	}
	token.AccessedTime = helper.GetTimestamp()
	if err := token.Update(); err != nil {
		logger.SysError("failed to update token accessed time: " + err.Error())
	}
	return token, nil
}

// CreateRootTokenIfNeed seeds the token table from INITIAL_ROOT_TOKEN so a
// fresh deployment is reachable without touching the database by hand.
func CreateRootTokenIfNeed() error {
	if config.InitialRootToken == "" {
		return nil
	}
	var count int64
	if err := DB.Model(&Token{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	logger.SysLog("no token found, creating root token from INITIAL_ROOT_TOKEN")
	token := Token{
		Key:         config.InitialRootToken,
		Name:        "root",
		Status:      TokenStatusEnabled,
		CreatedTime: helper.GetTimestamp(),
	}
	if err := token.Insert(); err != nil {
		return fmt.Errorf("failed to create root token: %w", err)
	}
	return nil
}
