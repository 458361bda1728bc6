package helper

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GetTimestamp() int64 {
	return time.Now().Unix()
}

func GetTimeString() string {
	now := time.Now()
	return fmt.Sprintf("%s%d", now.Format("20060102150405"), now.UnixNano()%1e9)
}

// GenRequestID returns an id that sorts by creation time, used both as the
// X-Request-Id header value and as the log correlation key.
func GenRequestID() string {
	return GetTimeString() + GetRandomNumberString(8)
}

// GenTaskID returns a prefixed opaque id for generation tasks, e.g. "gen_6f1a...".
func GenTaskID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func GetRandomNumberString(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	key := make([]byte, length)
	for i := 0; i < length; i++ {
		key[i] = byte(rng.Intn(10) + '0')
	}
	return string(key)
}

func Max(a int, b int) int {
	if a >= b {
		return a
	}
	return b
}

func AssignOrDefault(value string, defaultValue string) string {
	if len(value) != 0 {
		return value
	}
	return defaultValue
}
