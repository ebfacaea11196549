package main

import (
	"io"

	"github.com/spf13/cobra"
)

type infoReport struct {
	Path        string `json:"path" yaml:"path"`
	Profile     string `json:"profile" yaml:"profile"`
	Hint        string `json:"passwordHint" yaml:"passwordHint"`
	Iterations  int    `json:"iterations" yaml:"iterations"`
	Folders     int    `json:"folders" yaml:"folders"`
	Attachments int    `json:"attachments" yaml:"attachments"`
}

func (r infoReport) renderText(w io.Writer) error {
	t := newTable(w)
	row(t, "Path:", r.Path)
	row(t, "Profile:", r.Profile)
	row(t, "Password hint:", r.Hint)
	row(t, "Iterations:", r.Iterations)
	row(t, "Folders:", r.Folders)
	row(t, "Attachments:", r.Attachments)
	return t.Flush()
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show profile metadata without unlocking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.cancel()

			v, err := s.open()
			if err != nil {
				return err
			}

			profile := v.Profile()
			report := infoReport{
				Path:        v.Base(),
				Profile:     profile.UUID.String(),
				Hint:        profile.PasswordHint,
				Iterations:  profile.Iterations,
				Folders:     len(v.Folders()),
				Attachments: len(v.Orphans()),
			}
			return render(cmd.OutOrStdout(), s.cfg.Output.Format, report)
		},
	}
}
