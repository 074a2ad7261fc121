package param

import (
	"fmt"
	"sort"
)

// ID names one configurable terminal attribute.
type ID uint32

// VendorBase is the first vendor-defined ID; lower IDs are standard.
const VendorBase ID = 0xF000

// Standard parameter IDs.
const (
	HeartbeatInterval          ID = 0x0001
	TCPResponseTimeout         ID = 0x0002
	TCPRetransmissions         ID = 0x0003
	UDPResponseTimeout         ID = 0x0004
	UDPRetransmissions         ID = 0x0005
	SMSResponseTimeout         ID = 0x0006
	SMSRetransmissions         ID = 0x0007
	LocationReportStrategy     ID = 0x0020
	LocationReportPlan         ID = 0x0021
	DriverLogoutReportInterval ID = 0x0022
	SleepReportInterval        ID = 0x0027
	AlarmReportInterval        ID = 0x0028
	DefaultReportInterval      ID = 0x0029
	DefaultReportDistance      ID = 0x002C
	DriverLogoutReportDistance ID = 0x002D
	SleepReportDistance        ID = 0x002E
	AlarmReportDistance        ID = 0x002F
	CornerRetransmitAngle      ID = 0x0030
	AlarmMask                  ID = 0x0050
	AlarmSMSSwitch             ID = 0x0051
	AlarmCaptureSwitch         ID = 0x0052
	AlarmCaptureStoreFlags     ID = 0x0053
	AlarmKeyFlags              ID = 0x0054
	MaxSpeed                   ID = 0x0055
	GNSSPositionMode           ID = 0x0090
	GNSSBaudRate               ID = 0x0091
	GNSSOutputFrequency        ID = 0x0092
	GNSSCollectFrequency       ID = 0x0093
	GNSSUploadMode             ID = 0x0094
	GNSSUploadSetting          ID = 0x0095
	CANBus1CollectInterval     ID = 0x0100
	CANBus1UploadInterval      ID = 0x0101
	CANBus2CollectInterval     ID = 0x0102
	CANBus2UploadInterval      ID = 0x0103
	CANBusIDCollect            ID = 0x0110
)

// Vendor parameter IDs.
const (
	GNSSModuleEnable    ID = 0xF000
	CDRadioModuleEnable ID = 0xF001
	NtripCorsEnable     ID = 0xF002
	NtripServiceEnable  ID = 0xF003
	JT808ServiceEnable  ID = 0xF004

	GNSSLogGGA ID = 0xF010
	GNSSLogRMC ID = 0xF011
	GNSSLogATT ID = 0xF012

	CDRadioBaudRate    ID = 0xF020
	CDRadioWorkFreq    ID = 0xF021
	CDRadioReceiveMode ID = 0xF022
	CDRadioFormCode    ID = 0xF023

	NtripCorsIP                ID = 0xF030
	NtripCorsPort              ID = 0xF031
	NtripCorsUser              ID = 0xF032
	NtripCorsPassword          ID = 0xF033
	NtripCorsMountPoint        ID = 0xF034
	NtripCorsGGAReportInterval ID = 0xF035

	NtripServiceIP                ID = 0xF040
	NtripServicePort              ID = 0xF041
	NtripServiceUser              ID = 0xF042
	NtripServicePassword          ID = 0xF043
	NtripServiceMountPoint        ID = 0xF044
	NtripServiceGGAReportInterval ID = 0xF045

	JT808ServiceIP             ID = 0xF050
	JT808ServicePort           ID = 0xF051
	JT808ServicePhoneNumber    ID = 0xF052
	JT808ServiceReportInterval ID = 0xF053
)

// Spec declares one catalogue entry. Size, when non-zero, pins the length of
// an otherwise variable-width value.
type Spec struct {
	ID          ID
	Name        string
	Kind        Kind
	Size        int
	Unit        string
	Description string
}

// Width is the exact stored length, or VariableWidth.
func (s Spec) Width() int {
	if s.Size > 0 {
		return s.Size
	}
	return s.Kind.Width()
}

var catalogue = []Spec{
	{HeartbeatInterval, "heartbeat_interval", KindU32, 0, "s", "terminal heartbeat interval"},
	{TCPResponseTimeout, "tcp_response_timeout", KindU32, 0, "s", "TCP reply timeout"},
	{TCPRetransmissions, "tcp_retransmissions", KindU32, 0, "", "TCP retransmission count"},
	{UDPResponseTimeout, "udp_response_timeout", KindU32, 0, "s", "UDP reply timeout"},
	{UDPRetransmissions, "udp_retransmissions", KindU32, 0, "", "UDP retransmission count"},
	{SMSResponseTimeout, "sms_response_timeout", KindU32, 0, "s", "SMS reply timeout"},
	{SMSRetransmissions, "sms_retransmissions", KindU32, 0, "", "SMS retransmission count"},
	{LocationReportStrategy, "location_report_strategy", KindU32, 0, "", "0 timed, 1 distance, 2 both"},
	{LocationReportPlan, "location_report_plan", KindU32, 0, "", "0 by ACC, 1 by login then ACC"},
	{DriverLogoutReportInterval, "driver_logout_report_interval", KindU32, 0, "s", "report interval while no driver is logged in"},
	{SleepReportInterval, "sleep_report_interval", KindU32, 0, "s", "report interval while sleeping"},
	{AlarmReportInterval, "alarm_report_interval", KindU32, 0, "s", "report interval during emergency alarm"},
	{DefaultReportInterval, "default_report_interval", KindU32, 0, "s", "default report interval"},
	{DefaultReportDistance, "default_report_distance", KindU32, 0, "m", "default report distance"},
	{DriverLogoutReportDistance, "driver_logout_report_distance", KindU32, 0, "m", "report distance while no driver is logged in"},
	{SleepReportDistance, "sleep_report_distance", KindU32, 0, "m", "report distance while sleeping"},
	{AlarmReportDistance, "alarm_report_distance", KindU32, 0, "m", "report distance during emergency alarm"},
	{CornerRetransmitAngle, "corner_retransmit_angle", KindU32, 0, "deg", "corner supplement angle, below 180"},
	{AlarmMask, "alarm_mask", KindU32, 0, "", "alarm shield bits"},
	{AlarmSMSSwitch, "alarm_sms_switch", KindU32, 0, "", "alarm bits that send an SMS"},
	{AlarmCaptureSwitch, "alarm_capture_switch", KindU32, 0, "", "alarm bits that trigger a camera capture"},
	{AlarmCaptureStoreFlags, "alarm_capture_store_flags", KindU32, 0, "", "alarm bits whose captures are stored locally"},
	{AlarmKeyFlags, "alarm_key_flags", KindU32, 0, "", "alarm bits marked as key alarms"},
	{MaxSpeed, "max_speed", KindU32, 0, "km/h", "speed limit"},
	{GNSSPositionMode, "gnss_position_mode", KindU8, 0, "", "bit0 GPS, bit1 BeiDou, bit2 GLONASS, bit3 Galileo"},
	{GNSSBaudRate, "gnss_baud_rate", KindU8, 0, "", "GNSS output baud rate code"},
	{GNSSOutputFrequency, "gnss_output_frequency", KindU8, 0, "", "0 500ms, 1 1000ms, 2 2000ms, 3 3000ms, 4 4000ms"},
	{GNSSCollectFrequency, "gnss_collect_frequency", KindU32, 0, "s", "detailed position collect interval"},
	{GNSSUploadMode, "gnss_upload_mode", KindU8, 0, "", "detailed position upload mode"},
	{GNSSUploadSetting, "gnss_upload_setting", KindU32, 0, "", "upload setting, unit depends on upload mode"},
	{CANBus1CollectInterval, "canbus1_collect_interval", KindU32, 0, "ms", "CAN channel 1 collect interval, 0 disables"},
	{CANBus1UploadInterval, "canbus1_upload_interval", KindU16, 0, "s", "CAN channel 1 upload interval, 0 disables"},
	{CANBus2CollectInterval, "canbus2_collect_interval", KindU32, 0, "ms", "CAN channel 2 collect interval, 0 disables"},
	{CANBus2UploadInterval, "canbus2_upload_interval", KindU16, 0, "s", "CAN channel 2 upload interval, 0 disables"},
	{CANBusIDCollect, "canbus_id_collect", KindText, 8, "", "per CAN ID collect setting, BYTE[8]"},

	{GNSSModuleEnable, "gnss_module_enable", KindU8, 0, "", "start GNSS module at boot"},
	{CDRadioModuleEnable, "cdradio_module_enable", KindU8, 0, "", "start CDRadio module at boot"},
	{NtripCorsEnable, "ntrip_cors_enable", KindU8, 0, "", "start NTRIP CORS client at boot"},
	{NtripServiceEnable, "ntrip_service_enable", KindU8, 0, "", "start NTRIP service at boot"},
	{JT808ServiceEnable, "jt808_service_enable", KindU8, 0, "", "start JT808 service at boot"},
	{GNSSLogGGA, "gnss_log_gga", KindU8, 0, "", "emit GGA sentences"},
	{GNSSLogRMC, "gnss_log_rmc", KindU8, 0, "", "emit RMC sentences"},
	{GNSSLogATT, "gnss_log_att", KindU8, 0, "", "emit ATT sentences"},
	{CDRadioBaudRate, "cdradio_baud_rate", KindU32, 0, "bps", "CDRadio output baud rate"},
	{CDRadioWorkFreq, "cdradio_work_freq", KindU16, 0, "", "CDRadio working frequency point"},
	{CDRadioReceiveMode, "cdradio_receive_mode", KindU8, 0, "", "CDRadio receive mode"},
	{CDRadioFormCode, "cdradio_form_code", KindU8, 0, "", "CDRadio service number"},
	{NtripCorsIP, "ntrip_cors_ip", KindText, 0, "", "NTRIP CORS caster address"},
	{NtripCorsPort, "ntrip_cors_port", KindU16, 0, "", "NTRIP CORS caster port"},
	{NtripCorsUser, "ntrip_cors_user", KindText, 0, "", "NTRIP CORS user"},
	{NtripCorsPassword, "ntrip_cors_password", KindText, 0, "", "NTRIP CORS password"},
	{NtripCorsMountPoint, "ntrip_cors_mount_point", KindText, 0, "", "NTRIP CORS mount point"},
	{NtripCorsGGAReportInterval, "ntrip_cors_gga_report_interval", KindU8, 0, "s", "NTRIP CORS GGA upload interval"},
	{NtripServiceIP, "ntrip_service_ip", KindText, 0, "", "NTRIP service address"},
	{NtripServicePort, "ntrip_service_port", KindU16, 0, "", "NTRIP service port"},
	{NtripServiceUser, "ntrip_service_user", KindText, 0, "", "NTRIP service user"},
	{NtripServicePassword, "ntrip_service_password", KindText, 0, "", "NTRIP service password"},
	{NtripServiceMountPoint, "ntrip_service_mount_point", KindText, 0, "", "NTRIP service mount point"},
	{NtripServiceGGAReportInterval, "ntrip_service_gga_report_interval", KindU8, 0, "s", "NTRIP service GGA upload interval"},
	{JT808ServiceIP, "jt808_service_ip", KindText, 0, "", "JT808 platform address"},
	{JT808ServicePort, "jt808_service_port", KindU16, 0, "", "JT808 platform port"},
	{JT808ServicePhoneNumber, "jt808_service_phone_number", KindText, 0, "", "terminal phone number"},
	{JT808ServiceReportInterval, "jt808_service_report_interval", KindU8, 0, "s", "location report interval"},
}

var byID = func() map[ID]Spec {
	m := make(map[ID]Spec, len(catalogue))
	for _, s := range catalogue {
		if _, dup := m[s.ID]; dup {
			panic(fmt.Sprintf("param: duplicate catalogue id 0x%04X", uint32(s.ID)))
		}
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the catalogue entry for id.
func Lookup(id ID) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// Catalogue returns every known parameter ordered by ID.
func Catalogue() []Spec {
	out := make([]Spec, len(catalogue))
	copy(out, catalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Vendor reports whether id is in the vendor-defined range.
func (id ID) Vendor() bool {
	return id >= VendorBase
}

func (id ID) String() string {
	if s, ok := byID[id]; ok {
		return fmt.Sprintf("%s(0x%04X)", s.Name, uint32(id))
	}
	return fmt.Sprintf("0x%04X", uint32(id))
}

// GNSSBaud is the value space of GNSSBaudRate.
type GNSSBaud uint8

const (
	GNSSBaud4800 GNSSBaud = iota
	GNSSBaud9600
	GNSSBaud19200
	GNSSBaud38400
	GNSSBaud57600
	GNSSBaud115200
)

// BitsPerSecond returns 0 for codes outside the table.
func (b GNSSBaud) BitsPerSecond() int {
	switch b {
	case GNSSBaud4800:
		return 4800
	case GNSSBaud9600:
		return 9600
	case GNSSBaud19200:
		return 19200
	case GNSSBaud38400:
		return 38400
	case GNSSBaud57600:
		return 57600
	case GNSSBaud115200:
		return 115200
	default:
		return 0
	}
}
