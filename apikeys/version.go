package apikeys

// sdkVersion is stamped at build time:
//
//	go build -ldflags "-X github.com/status-im/mapzen-core/apikeys.sdkVersion=1.4.1"
var sdkVersion = "1.4.0"

// SDKVersion returns the SDK release this build was cut from
func SDKVersion() string {
	return sdkVersion
}
