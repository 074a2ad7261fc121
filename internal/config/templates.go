package config

import (
	"fmt"
	"os"
)

func Template() string {
	return profileTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(profileTemplate), 0o600)
}

const profileTemplate = `heartbeat_interval = 30

[startup]
gnss = 1
cdradio = 0
ntrip_cors = 1
ntrip_service = 0
jt808_service = 1

[gnss_log]
gga = 1
rmc = 1
att = 0

[ntrip_cors]
ip = "rtk.example.com"
port = 2101
user = "rover"
password = "change-me"
mount_point = "RTCM33"
gga_report_interval = 5

[jt808_service]
ip = "iot.example.com"
port = 7611
phone_number = "13800138000"
report_interval = 30
`
