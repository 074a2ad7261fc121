package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/termparam/internal/protocol/param"
	"github.com/danmuck/termparam/internal/protocol/paramlist"
)

// Profile is a terminal configuration file. Every section is optional; a nil
// section leaves the matching table entries untouched.
type Profile struct {
	HeartbeatInterval *uint32         `toml:"heartbeat_interval,omitempty"`
	Startup           *StartupSection `toml:"startup,omitempty"`
	GNSSLog           *GNSSLogSection `toml:"gnss_log,omitempty"`
	CDRadio           *CDRadioSection `toml:"cdradio,omitempty"`
	NtripCors         *NtripSection   `toml:"ntrip_cors,omitempty"`
	NtripService      *NtripSection   `toml:"ntrip_service,omitempty"`
	JT808Service      *JT808Section   `toml:"jt808_service,omitempty"`
}

type StartupSection struct {
	GNSS         uint8 `toml:"gnss"`
	CDRadio      uint8 `toml:"cdradio"`
	NtripCors    uint8 `toml:"ntrip_cors"`
	NtripService uint8 `toml:"ntrip_service"`
	JT808Service uint8 `toml:"jt808_service"`
}

type GNSSLogSection struct {
	GGA uint8 `toml:"gga"`
	RMC uint8 `toml:"rmc"`
	ATT uint8 `toml:"att"`
}

type CDRadioSection struct {
	BaudRate    uint32 `toml:"baud_rate"`
	WorkFreq    uint16 `toml:"work_freq"`
	ReceiveMode uint8  `toml:"receive_mode"`
	FormCode    uint8  `toml:"form_code"`
}

type NtripSection struct {
	IP                string `toml:"ip"`
	Port              uint16 `toml:"port"`
	User              string `toml:"user"`
	Password          string `toml:"password"`
	MountPoint        string `toml:"mount_point"`
	GGAReportInterval uint8  `toml:"gga_report_interval"`
}

type JT808Section struct {
	IP             string `toml:"ip"`
	Port           uint16 `toml:"port"`
	PhoneNumber    string `toml:"phone_number"`
	ReportInterval uint8  `toml:"report_interval"`
}

func LoadProfile(path string) (Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Profile{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := ValidateProfile(p); err != nil {
		return Profile{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return p, nil
}

// DecodeProfile parses and validates profile text.
func DecodeProfile(data string) (Profile, error) {
	var p Profile
	meta, err := toml.Decode(data, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("config parse failed: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Profile{}, err
	}
	if err := ValidateProfile(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func checkUndecoded(meta toml.MetaData) error {
	keys := meta.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

func ValidateProfile(p Profile) error {
	var errs []error
	if p.Startup != nil {
		s := p.Startup
		errs = append(errs,
			validateSwitch("startup.gnss", s.GNSS),
			validateSwitch("startup.cdradio", s.CDRadio),
			validateSwitch("startup.ntrip_cors", s.NtripCors),
			validateSwitch("startup.ntrip_service", s.NtripService),
			validateSwitch("startup.jt808_service", s.JT808Service),
		)
	}
	if p.GNSSLog != nil {
		g := p.GNSSLog
		errs = append(errs,
			validateSwitch("gnss_log.gga", g.GGA),
			validateSwitch("gnss_log.rmc", g.RMC),
			validateSwitch("gnss_log.att", g.ATT),
		)
	}
	if p.NtripCors != nil {
		errs = append(errs, validateNtrip("ntrip_cors", *p.NtripCors)...)
		if strings.TrimSpace(p.NtripCors.MountPoint) == "" {
			errs = append(errs, fmt.Errorf("ntrip_cors missing mount_point"))
		}
	}
	if p.NtripService != nil {
		errs = append(errs, validateNtrip("ntrip_service", *p.NtripService)...)
	}
	if s := p.JT808Service; s != nil {
		errs = append(errs,
			validateEndpoint("jt808_service", s.IP, s.Port),
			validateText("jt808_service.phone_number", s.PhoneNumber),
		)
		if strings.TrimSpace(s.PhoneNumber) == "" {
			errs = append(errs, fmt.Errorf("jt808_service missing phone_number"))
		}
	}
	return errors.Join(errs...)
}

func validateSwitch(key string, v uint8) error {
	if v > 1 {
		return fmt.Errorf("%s must be 0 or 1", key)
	}
	return nil
}

func validateEndpoint(section, ip string, port uint16) error {
	if strings.TrimSpace(ip) == "" {
		return fmt.Errorf("%s missing ip", section)
	}
	if port == 0 {
		return fmt.Errorf("%s missing port", section)
	}
	return validateText(section+".ip", ip)
}

func validateNtrip(section string, n NtripSection) []error {
	return []error{
		validateEndpoint(section, n.IP, n.Port),
		validateText(section+".user", n.User),
		validateText(section+".password", n.Password),
		validateText(section+".mount_point", n.MountPoint),
	}
}

// validateText rejects values that cannot fit in one parameter item.
func validateText(key, v string) error {
	if len(v) > paramlist.MaxValueLen {
		return fmt.Errorf("%s longer than %d bytes", key, paramlist.MaxValueLen)
	}
	return nil
}

// Apply packs every defined section into t. Sections are applied in a fixed
// order and each one is all-or-nothing; an error stops at the failing section.
func (p Profile) Apply(t param.Table) error {
	if p.HeartbeatInterval != nil {
		if err := param.PackHeartbeatInterval(t, *p.HeartbeatInterval); err != nil {
			return err
		}
	}
	if s := p.Startup; s != nil {
		if err := param.PackStartupModules(t, param.StartupModules(*s)); err != nil {
			return err
		}
	}
	if g := p.GNSSLog; g != nil {
		if err := param.PackGNSSLog(t, param.GNSSLog(*g)); err != nil {
			return err
		}
	}
	if c := p.CDRadio; c != nil {
		if err := param.PackCDRadio(t, param.CDRadio(*c)); err != nil {
			return err
		}
	}
	if n := p.NtripCors; n != nil {
		if err := param.PackNtripCors(t, param.NtripConn(*n)); err != nil {
			return err
		}
	}
	if n := p.NtripService; n != nil {
		if err := param.PackNtripService(t, param.NtripConn(*n)); err != nil {
			return err
		}
	}
	if j := p.JT808Service; j != nil {
		if err := param.PackJT808Service(t, param.JT808Service(*j)); err != nil {
			return err
		}
	}
	return nil
}

// ProfileFromTable rebuilds a profile from every bundle fully present in t.
// A bundle with some members missing is skipped; a present but malformed
// bundle is an error.
func ProfileFromTable(t param.Table) (Profile, error) {
	var p Profile
	present := func(name string) bool {
		b, ok := param.LookupBundle(name)
		return ok && b.Present(t)
	}

	if present(param.BundleHeartbeat) {
		v, err := param.ParseHeartbeatInterval(t)
		if err != nil {
			return Profile{}, err
		}
		p.HeartbeatInterval = &v
	}
	if present(param.BundleStartup) {
		s, err := param.ParseStartupModules(t)
		if err != nil {
			return Profile{}, err
		}
		sec := StartupSection(s)
		p.Startup = &sec
	}
	if present(param.BundleGNSSLog) {
		g, err := param.ParseGNSSLog(t)
		if err != nil {
			return Profile{}, err
		}
		sec := GNSSLogSection(g)
		p.GNSSLog = &sec
	}
	if present(param.BundleCDRadio) {
		c, err := param.ParseCDRadio(t)
		if err != nil {
			return Profile{}, err
		}
		sec := CDRadioSection(c)
		p.CDRadio = &sec
	}
	if present(param.BundleNtripCors) {
		n, err := param.ParseNtripCors(t)
		if err != nil {
			return Profile{}, err
		}
		sec := NtripSection(n)
		p.NtripCors = &sec
	}
	if present(param.BundleNtripService) {
		n, err := param.ParseNtripService(t)
		if err != nil {
			return Profile{}, err
		}
		sec := NtripSection(n)
		p.NtripService = &sec
	}
	if present(param.BundleJT808Service) {
		j, err := param.ParseJT808Service(t)
		if err != nil {
			return Profile{}, err
		}
		sec := JT808Section(j)
		p.JT808Service = &sec
	}
	return p, nil
}

// WriteProfile encodes p as TOML.
func WriteProfile(w io.Writer, p Profile) error {
	return toml.NewEncoder(w).Encode(p)
}
