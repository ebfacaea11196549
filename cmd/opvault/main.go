package main

import (
	"os"

	"github.com/MKhiriev/go-opvault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := newRootCmd(info).Execute(); err != nil {
		os.Exit(1)
	}
}
