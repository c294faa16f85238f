package config

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// ServerConfiguration contains the http server settings
type ServerConfiguration struct {
	Port               int
	Address            string
	CSRFToken          string `mapstructure:"csrf-token"     json:"-"`
	SecureCookies      bool   `mapstructure:"secure-cookies"`
	LoadTemplateFolder bool   `mapstructure:"load-template-folder"`
}

// DatabaseConfiguration contains the settings required to connect to a database
type DatabaseConfiguration struct {
	Type string
	DSN  string `json:"-"`
}

// AdminConfiguration holds the single operator credential and session settings.
// The password is never configured in plain text, only its bcrypt hash.
type AdminConfiguration struct {
	Username      string
	PasswordHash  string        `mapstructure:"password-hash"  json:"-"`
	SessionSecret string        `mapstructure:"session-secret" json:"-"`
	SessionTTL    time.Duration `mapstructure:"session-ttl"`
}

// VTCConfiguration points at the TruckersMP company whose stats are mirrored
type VTCConfiguration struct {
	ID     int
	APIURL string `mapstructure:"api-url"`
}

// DiscordConfiguration contains the bot credentials, only needed for
// the bot and commands subcommands
type DiscordConfiguration struct {
	Token   string `json:"-"`
	AppID   string `mapstructure:"app-id"`
	GuildID string `mapstructure:"guild-id"`
}

// FileSystems contains the used file systems
type FileSystems struct {
	StaticFolder fs.FS
	Templates    fs.FS
}

// Configuration harbours the entire prologistix configuration
type Configuration struct {
	Server   *ServerConfiguration   `mapstructure:"server"`
	Database *DatabaseConfiguration `mapstructure:"database"`
	Admin    *AdminConfiguration    `mapstructure:"admin"`
	VTC      *VTCConfiguration      `mapstructure:"vtc"`
	Discord  *DiscordConfiguration  `mapstructure:"discord"`
}

// Validate does some basic validation of the config file and tries to be helpful on missconfiguration.
// A missing admin credential or session secret fails validation, the
// service must not come up with the admin panel effectively unlocked.
func (c *Configuration) Validate() error {
	if c.Server == nil {
		return errors.New("no server configuration found")
	}
	if c.Database == nil {
		return errors.New("no database configuration found")
	}
	if c.Admin == nil {
		return errors.New("no admin configuration found")
	}
	if c.Admin.Username == "" {
		return errors.New("admin.username is required")
	}
	if c.Admin.PasswordHash == "" {
		return errors.New(
			"admin.password-hash is required, generate one with `prologistix hash`",
		)
	}
	if c.Admin.SessionSecret == "" {
		return errors.New("admin.session-secret is required")
	}
	if c.Admin.SessionTTL <= 0 {
		return errors.New("admin.session-ttl needs to be a positive duration")
	}
	if c.Server.CSRFToken == "" {
		return errors.New("server.csrf-token is required")
	}
	if c.VTC == nil || c.VTC.ID <= 0 {
		return errors.New("vtc.id is required")
	}
	if c.Server.LoadTemplateFolder {
		if _, err := os.Stat("templates"); os.IsNotExist(err) {
			return errors.New(
				"you enabled server.load-template-folder, you need to put the templates folder into your current working directory",
			)
		}
	}
	return nil
}

// DebugMode returns true if the PLX_DEBUG_MODE variable is set
func (*Configuration) DebugMode() bool {
	if r := os.Getenv("PLX_DEBUG_MODE"); r == "true" {
		return true
	}
	return false
}
