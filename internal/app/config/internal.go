package config

type InternalConfig struct {
	App       App
	Store     AppStore
	Scheduler AppScheduler
	Minio     AppMinio
	RabbitMQ  AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
	// AuditCronSpec is the cron expression for the timetable integrity audit
	// worker (e.g. "@daily"). Empty disables the worker.
	AuditCronSpec string
}

// AppStore selects the snapshot store backend. "redis" keeps one key per
// collection; "mongo" keeps one document per collection.
type AppStore struct {
	Backend string
}

type AppScheduler struct {
	BaseUrl                 string
	Model                   string
	APIKey                  string
	RequestTimeoutInSeconds int
	// RetryOnTransientError enables a single retry on network failure before
	// surfacing an adapter error.
	RetryOnTransientError bool
	// LockTTLInSeconds bounds the busy-flag held while a generation request
	// is outstanding; a response arriving after expiry is discarded.
	LockTTLInSeconds int
}

type AppMinio struct {
	BucketName             string
	PhotoMaxUploadSizeInMB int
	PhotoOffloadEnabled    bool
}

type AppRabbitMQ struct {
	EventsQueue string
	Enabled     bool
}
