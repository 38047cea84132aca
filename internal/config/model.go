package config

type AppConfig struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Security   SecurityConfig   `json:"security" yaml:"security"`
	Signalling SignallingConfig `json:"signalling" yaml:"signalling"`
}

type ServerConfig struct {
	Port       int     `json:"port" yaml:"port"`
	TLSCrtFile *string `json:"tlsCrtFile" yaml:"tlsCrtFile"`
	TLSKeyFile *string `json:"tlsKeyFile" yaml:"tlsKeyFile"`
}

type SecurityConfig struct {
	AdminCredential *string `json:"adminCredential" yaml:"adminCredential"`
}

type SignallingConfig struct {
	// PingIntervalMsec is the keep-alive ping period announced to clients.
	PingIntervalMsec int `json:"pingIntervalMsec" yaml:"pingIntervalMsec"`

	// RingTimeoutMsec bounds how long an unanswered call attempt rings.
	// Zero disables the timeout: a call rings until accepted, declined or
	// the caller disconnects.
	RingTimeoutMsec int `json:"ringTimeoutMsec" yaml:"ringTimeoutMsec"`

	// NotifyReplacedAcceptor sends call-already-accepted to an acceptor
	// displaced by a later accept for the same call. Off by default to
	// match the historical last-write-wins behavior.
	NotifyReplacedAcceptor bool `json:"notifyReplacedAcceptor" yaml:"notifyReplacedAcceptor"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:       8090,
			TLSCrtFile: nil,
			TLSKeyFile: nil,
		},
		Security: SecurityConfig{
			AdminCredential: nil,
		},
		Signalling: SignallingConfig{
			PingIntervalMsec:       30000,
			RingTimeoutMsec:        0,
			NotifyReplacedAcceptor: false,
		},
	}
}
