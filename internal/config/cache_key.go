package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the redis key holding a browser session payload
func (r *CacheKeyStruct) SessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// ActivityChannel returns the Redis PubSub channel carrying test attempt events
func (r *CacheKeyStruct) ActivityChannel() string {
	return "activity:tests"
}

var CacheKey = NewCacheKeyStruct()
