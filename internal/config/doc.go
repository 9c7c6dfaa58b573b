// Package config defines the session configuration for a token launch.
//
// A Session captures every user choice made before the launch sequence
// starts: target network, wallet source, fee tier, token attributes and
// the circulating/locked supply split. It is assembled once (by the
// wizard or from a YAML file), validated, and treated as read-only for
// the rest of the run.
package config
