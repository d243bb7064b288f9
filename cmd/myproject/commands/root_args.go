package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read in place of unset flags.
const EnvPrefix = "MYPROJECT"

const (
	flagLogLevel       = "log_level"
	flagLogFormat      = "log_format"
	flagCPUProfile     = "cpuprofile"
	flagMemProfile     = "memprofile"
	flagMemProfileRate = "memprofile_rate"
)

type RootArgs struct {
	v *viper.Viper
}

func NewRootArgs() *RootArgs {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &RootArgs{v: v}
}

// Bind makes the flags the highest-priority source for their keys.
func (a *RootArgs) Bind(flags *pflag.FlagSet) error {
	err := a.v.BindPFlags(flags)
	if err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

func (a *RootArgs) GetLogLevel() string {
	return a.v.GetString(flagLogLevel)
}

func (a *RootArgs) GetLogFormat() string {
	return a.v.GetString(flagLogFormat)
}

func (a *RootArgs) GetCPUProfile() string {
	return a.v.GetString(flagCPUProfile)
}

func (a *RootArgs) GetMemProfile() string {
	return a.v.GetString(flagMemProfile)
}

func (a *RootArgs) GetMemProfileRate() int {
	return a.v.GetInt(flagMemProfileRate)
}
