package config

import (
	"flag"
)

const defaultCredentialsFile = "creds.json"

type Flags struct {
	spreadsheetID string

	credentialsFile string
	logLevel        string
}

func (flags *Flags) Init() {
	flag.StringVar(&flags.spreadsheetID, "s", "", "ID of the spreadsheet with the Orders, Customers and Prices worksheets")

	flag.StringVar(&flags.credentialsFile, "c", defaultCredentialsFile, "service account credentials file")
	flag.StringVar(&flags.logLevel, "l", "warn", "log level")

	flag.Parse()
}
