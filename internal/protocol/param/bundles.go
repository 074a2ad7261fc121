package param

// Bundle names.
const (
	BundleHeartbeat    = "heartbeat_interval"
	BundleStartup      = "startup"
	BundleGNSSLog      = "gnss_log"
	BundleCDRadio      = "cdradio"
	BundleNtripCors    = "ntrip_cors"
	BundleNtripService = "ntrip_service"
	BundleJT808Service = "jt808_service"
)

var (
	heartbeatBundle = Bundle{Name: BundleHeartbeat, Members: []ID{HeartbeatInterval}}
	startupBundle   = Bundle{Name: BundleStartup, Members: []ID{
		GNSSModuleEnable,
		CDRadioModuleEnable,
		NtripCorsEnable,
		NtripServiceEnable,
		JT808ServiceEnable,
	}}
	gnssLogBundle = Bundle{Name: BundleGNSSLog, Members: []ID{GNSSLogGGA, GNSSLogRMC, GNSSLogATT}}
	cdradioBundle = Bundle{Name: BundleCDRadio, Members: []ID{
		CDRadioBaudRate,
		CDRadioWorkFreq,
		CDRadioReceiveMode,
		CDRadioFormCode,
	}}
	ntripCorsBundle = Bundle{Name: BundleNtripCors, Members: []ID{
		NtripCorsIP,
		NtripCorsPort,
		NtripCorsUser,
		NtripCorsPassword,
		NtripCorsMountPoint,
		NtripCorsGGAReportInterval,
	}}
	ntripServiceBundle = Bundle{Name: BundleNtripService, Members: []ID{
		NtripServiceIP,
		NtripServicePort,
		NtripServiceUser,
		NtripServicePassword,
		NtripServiceMountPoint,
		NtripServiceGGAReportInterval,
	}}
	jt808ServiceBundle = Bundle{Name: BundleJT808Service, Members: []ID{
		JT808ServiceIP,
		JT808ServicePort,
		JT808ServicePhoneNumber,
		JT808ServiceReportInterval,
	}}

	allBundles = []*Bundle{
		&heartbeatBundle,
		&startupBundle,
		&gnssLogBundle,
		&cdradioBundle,
		&ntripCorsBundle,
		&ntripServiceBundle,
		&jt808ServiceBundle,
	}
)

// Bundles returns copies of every built-in bundle.
func Bundles() []Bundle {
	out := make([]Bundle, 0, len(allBundles))
	for _, b := range allBundles {
		out = append(out, b.clone())
	}
	return out
}

func LookupBundle(name string) (Bundle, bool) {
	for _, b := range allBundles {
		if b.Name == name {
			return b.clone(), true
		}
	}
	return Bundle{}, false
}

func (b Bundle) clone() Bundle {
	members := make([]ID, len(b.Members))
	copy(members, b.Members)
	return Bundle{Name: b.Name, Members: members}
}

func PackHeartbeatInterval(t Table, seconds uint32) error {
	return heartbeatBundle.Pack(t, U32(seconds))
}

func ParseHeartbeatInterval(t Table) (uint32, error) {
	vs, err := heartbeatBundle.Parse(t)
	if err != nil {
		return 0, err
	}
	return vs[0].U32, nil
}

// StartupModules holds the boot-time enable switches, 0 disabled and 1 enabled.
type StartupModules struct {
	GNSS         uint8
	CDRadio      uint8
	NtripCors    uint8
	NtripService uint8
	JT808Service uint8
}

func PackStartupModules(t Table, s StartupModules) error {
	return startupBundle.Pack(t,
		U8(s.GNSS),
		U8(s.CDRadio),
		U8(s.NtripCors),
		U8(s.NtripService),
		U8(s.JT808Service),
	)
}

func ParseStartupModules(t Table) (StartupModules, error) {
	vs, err := startupBundle.Parse(t)
	if err != nil {
		return StartupModules{}, err
	}
	return StartupModules{
		GNSS:         vs[0].U8,
		CDRadio:      vs[1].U8,
		NtripCors:    vs[2].U8,
		NtripService: vs[3].U8,
		JT808Service: vs[4].U8,
	}, nil
}

// GNSSLog selects which NMEA sentences the GNSS module emits.
type GNSSLog struct {
	GGA uint8
	RMC uint8
	ATT uint8
}

func PackGNSSLog(t Table, g GNSSLog) error {
	return gnssLogBundle.Pack(t, U8(g.GGA), U8(g.RMC), U8(g.ATT))
}

func ParseGNSSLog(t Table) (GNSSLog, error) {
	vs, err := gnssLogBundle.Parse(t)
	if err != nil {
		return GNSSLog{}, err
	}
	return GNSSLog{GGA: vs[0].U8, RMC: vs[1].U8, ATT: vs[2].U8}, nil
}

type CDRadio struct {
	BaudRate    uint32
	WorkFreq    uint16
	ReceiveMode uint8
	FormCode    uint8
}

func PackCDRadio(t Table, c CDRadio) error {
	return cdradioBundle.Pack(t, U32(c.BaudRate), U16(c.WorkFreq), U8(c.ReceiveMode), U8(c.FormCode))
}

func ParseCDRadio(t Table) (CDRadio, error) {
	vs, err := cdradioBundle.Parse(t)
	if err != nil {
		return CDRadio{}, err
	}
	return CDRadio{
		BaudRate:    vs[0].U32,
		WorkFreq:    vs[1].U16,
		ReceiveMode: vs[2].U8,
		FormCode:    vs[3].U8,
	}, nil
}

// NtripConn is one differential-correction connection. The terminal carries
// two of them: the CORS caster it pulls corrections from and the backend
// service it relays to.
type NtripConn struct {
	IP                string
	Port              uint16
	User              string
	Password          string
	MountPoint        string
	GGAReportInterval uint8
}

func (c NtripConn) values() []Value {
	return []Value{
		Text(c.IP),
		U16(c.Port),
		Text(c.User),
		Text(c.Password),
		Text(c.MountPoint),
		U8(c.GGAReportInterval),
	}
}

func ntripConnFrom(vs []Value) NtripConn {
	return NtripConn{
		IP:                vs[0].Text,
		Port:              vs[1].U16,
		User:              vs[2].Text,
		Password:          vs[3].Text,
		MountPoint:        vs[4].Text,
		GGAReportInterval: vs[5].U8,
	}
}

func PackNtripCors(t Table, c NtripConn) error {
	return ntripCorsBundle.Pack(t, c.values()...)
}

func ParseNtripCors(t Table) (NtripConn, error) {
	vs, err := ntripCorsBundle.Parse(t)
	if err != nil {
		return NtripConn{}, err
	}
	return ntripConnFrom(vs), nil
}

func PackNtripService(t Table, c NtripConn) error {
	return ntripServiceBundle.Pack(t, c.values()...)
}

func ParseNtripService(t Table) (NtripConn, error) {
	vs, err := ntripServiceBundle.Parse(t)
	if err != nil {
		return NtripConn{}, err
	}
	return ntripConnFrom(vs), nil
}

// JT808Service is the upstream platform connection.
type JT808Service struct {
	IP             string
	Port           uint16
	PhoneNumber    string
	ReportInterval uint8
}

func PackJT808Service(t Table, s JT808Service) error {
	return jt808ServiceBundle.Pack(t, Text(s.IP), U16(s.Port), Text(s.PhoneNumber), U8(s.ReportInterval))
}

func ParseJT808Service(t Table) (JT808Service, error) {
	vs, err := jt808ServiceBundle.Parse(t)
	if err != nil {
		return JT808Service{}, err
	}
	return JT808Service{
		IP:             vs[0].Text,
		Port:           vs[1].U16,
		PhoneNumber:    vs[2].Text,
		ReportInterval: vs[3].U8,
	}, nil
}
