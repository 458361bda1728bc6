package config

import (
	"os"
	"strings"
	"time"

	"github.com/artloom/mediagate/common/env"
	"github.com/google/uuid"
)

var SystemName = "MediaGate"
var ServiceName = env.String("SERVICE_NAME", "mediagate")
var InstanceId = uuid.New().String()
var ServerAddress = env.String("SERVER_ADDRESS", "http://localhost:3000")

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"
var DebugSQLEnabled = strings.ToLower(os.Getenv("DEBUG_SQL")) == "true"
var MemoryCacheEnabled = strings.ToLower(os.Getenv("MEMORY_CACHE_ENABLED")) == "true"

var SyncFrequency = env.Int("SYNC_FREQUENCY", 10*60) // unit is second

// RelayTimeout bounds a single upstream generation call. Zero means the
// default client timeout applies.
var RelayTimeout = env.Int("RELAY_TIMEOUT", 0) // unit is second

// Upstream channels. The aggregation API serves hosted models; the local
// endpoint serves a self-hosted Automatic1111-compatible server.
var (
	AIMLAPIBaseURL = env.String("AIMLAPI_BASE_URL", "https://api.aimlapi.com")
	AIMLAPIKey     = os.Getenv("AIMLAPI_KEY")

	LocalSDBaseURL = env.String("LOCAL_SD_BASE_URL", "http://127.0.0.1:7860")
)

// S3-compatible result storage (R2, MinIO, S3). Disabled unless all of
// endpoint, bucket and both keys are set.
var (
	StoreEnabled   = env.Bool("STORE_ENABLED", false)
	StoreEndpoint  = os.Getenv("STORE_ENDPOINT")
	StoreBucket    = env.String("STORE_BUCKET", "mediagate-results")
	StoreAccessKey = os.Getenv("STORE_ACCESS_KEY")
	StoreSecretKey = os.Getenv("STORE_SECRET_KEY")
	StorePublicURL = os.Getenv("STORE_PUBLIC_URL")
	StoreRegion    = env.String("STORE_REGION", "auto")
)

// InitialRootToken is inserted on first start so the API is reachable
// before any token has been provisioned by hand.
var InitialRootToken = os.Getenv("INITIAL_ROOT_TOKEN")

var RelayProxy = os.Getenv("RELAY_PROXY")

var RateLimitKeyExpirationDuration = 20 * time.Minute

var (
	GlobalApiRateLimitNum            = env.Int("GLOBAL_API_RATE_LIMIT", 180000)
	GlobalApiRateLimitDuration int64 = 30 * 60
)
