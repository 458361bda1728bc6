package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/artloom/mediagate/common"
	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/logger"
)

var TokenCacheSeconds = config.SyncFrequency

func CacheGetTokenByKey(key string) (*Token, error) {
	var token Token
	if !common.RedisEnabled {
		err := DB.First(&token, quoteKeyColumn()+" = ?", key).Error
		return &token, err
	}
	tokenObjectString, err := common.RedisGet(fmt.Sprintf("token:%s", key))
	if err != nil {
		err := DB.First(&token, quoteKeyColumn()+" = ?", key).Error
		if err != nil {
			return nil, err
		}
		jsonBytes, err := json.Marshal(token)
		if err != nil {
			return nil, err
		}
		err = common.RedisSet(fmt.Sprintf("token:%s", key), string(jsonBytes), time.Duration(TokenCacheSeconds)*time.Second)
		if err != nil {
			logger.SysError("Redis set token error: " + err.Error())
		}
		return &token, nil
	}
	err = json.Unmarshal([]byte(tokenObjectString), &token)
	return &token, err
}

// CacheInvalidateToken drops the cached copy after a token is disabled or
// renamed.
func CacheInvalidateToken(key string) {
	if !common.RedisEnabled {
		return
	}
	if err := common.RedisDel(fmt.Sprintf("token:%s", key)); err != nil {
		logger.SysError("Redis delete token error: " + err.Error())
	}
}

// key is a reserved word on MySQL, quoted identifiers differ per dialect
func quoteKeyColumn() string {
	if common.UsingPostgreSQL {
		return `"key"`
	}
	return "`key`"
}
