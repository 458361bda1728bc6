package common

var Version = "v0.1.0"

var (
	UsingSQLite     = false
	UsingPostgreSQL = false
	UsingMySQL      = false
)

var SQLitePath = "mediagate.db"
var SQLiteBusyTimeout = 3000
