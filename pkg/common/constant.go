package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDashApiBaseURL      string = "DASH_API_BASE_URL"
	EnvKeyDashPollInterval    string = "DASH_POLL_INTERVAL"
	EnvKeyDashRefreshIndicate string = "DASH_REFRESH_INDICATOR"
	EnvKeyDashRequestTimeout  string = "DASH_REQUEST_TIMEOUT"

	EnvKeyDashHttpHostPort string = "DASH_HTTP_HOST_PORT"
	EnvKeyDashGrpcHostPort string = "DASH_GRPC_HOST_PORT"

	EnvKeyDashDBType string = "DASH_DB_TYPE"
	EnvKeyDashDbPath string = "DASH_DB_PATH"

	EnvKeyDashFetchRate    string = "DASH_FETCH_RATE"
	EnvKeyDashFetchBurst   string = "DASH_FETCH_BURST"
	EnvKeyDashRefreshRate  string = "DASH_REFRESH_RATE"
	EnvKeyDashRefreshBurst string = "DASH_REFRESH_BURST"

	LoggerNameFetchClient    string = "fetch_client"
	LoggerNameAgroCore       string = "agro_core"
	LoggerNameViewController string = "view_controller"
	LoggerNameScheduler      string = "scheduler"
	LoggerNameSnapshotStore  string = "snapshot_store"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameGrpcServer     string = "grpc_server"

	LoggerFieldCategory       string = "category"
	LoggerFieldView           string = "view"
	LoggerCategoryAgroPlots   string = "plots"
	LoggerCategoryAgroZones   string = "zones"
	LoggerCategoryAgroHistory string = "history"
)
