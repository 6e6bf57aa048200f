package eventlog

const (
	emptyString = ""

	// indentUnit is rendered once per indent level.
	indentUnit = "  "

	// maxDataDepth bounds recursion when copying or rendering event data.
	maxDataDepth = 32

	circularPlaceholder = "<circular reference>"
)

const (
	errMsgOptionsInvalid   = "Event log options are invalid."
	errMsgNilConfig        = "Logging config is nil."
	errMsgNilConfigService = "Config service is nil."
	errMsgConfigInvalid    = "Logging configuration is invalid."
	errMsgUnknownLevel     = "Unknown log level."
	errMsgLogDir           = "Failed to create logs directory."
	errMsgSinkLevel        = "Failed to set sink level."
)
