// Package config with configuration models and utilities
package config

import (
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// EnvToken is the environment variable holding the bot token
const EnvToken = "DISCORD_TOKEN"

// EnvLogChannelID is the environment variable holding the audit channel ID
const EnvLogChannelID = "LOG_CHANNEL_ID"

// Read reads configuration
func Read(reader io.Reader) (root *Root, err error) {
	root = &Root{}
	err = yaml.NewDecoder(reader).Decode(root)

	if err == io.EOF {
		err = nil
	}

	return
}

// Write writes configuration
func Write(writer io.Writer, root *Root) (err error) {
	err = yaml.NewEncoder(writer).Encode(root)

	return
}

// OverlayEnv overrides file values with process environment values.
// An invalid LOG_CHANNEL_ID leaves audit logging disabled.
func (root *Root) OverlayEnv() {
	if token := os.Getenv(EnvToken); token != "" {
		root.Private.Token = token
	}

	if raw, ok := os.LookupEnv(EnvLogChannelID); ok {
		if Digits(raw) {
			root.Private.LogChannelID = raw
		} else {
			root.Private.LogChannelID = ""
		}
	}
}

// Digits reports whether s is a non-empty digits-only string
func Digits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
