package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-opvault/internal/vault"
	"github.com/MKhiriev/go-opvault/models"
)

type itemRow struct {
	UUID        string `json:"uuid" yaml:"uuid"`
	Category    string `json:"category" yaml:"category"`
	Title       string `json:"title" yaml:"title"`
	Folder      string `json:"folder,omitempty" yaml:"folder,omitempty"`
	Trashed     bool   `json:"trashed" yaml:"trashed"`
	Attachments int    `json:"attachments" yaml:"attachments"`
}

type orphanRow struct {
	UUID     string `json:"uuid" yaml:"uuid"`
	ItemUUID string `json:"itemUUID" yaml:"itemUUID"`
}

type itemsReport struct {
	Items   []itemRow   `json:"items" yaml:"items"`
	Orphans []orphanRow `json:"orphans" yaml:"orphans"`
}

func (r itemsReport) renderText(w io.Writer) error {
	t := newTable(w)
	row(t, "UUID", "CATEGORY", "TITLE", "ATTACHMENTS")
	for _, it := range r.Items {
		title := it.Title
		if it.Trashed {
			title += " (trashed)"
		}
		row(t, it.UUID, it.Category, title, it.Attachments)
	}
	if err := t.Flush(); err != nil {
		return err
	}

	if len(r.Orphans) > 0 {
		fmt.Fprintf(w, "\n%d orphan attachment(s):\n", len(r.Orphans))
		for _, o := range r.Orphans {
			fmt.Fprintf(w, "  %s (item %s)\n", o.UUID, o.ItemUUID)
		}
	}
	return nil
}

func newItemsCmd() *cobra.Command {
	var showTrashed bool

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Unlock the vault and list its items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.cancel()

			v, keys, err := s.unlock()
			if err != nil {
				return err
			}

			report, err := buildItemsReport(v, keys, showTrashed)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), s.cfg.Output.Format, report)
		},
	}

	cmd.Flags().BoolVar(&showTrashed, "trashed", false, "Include items in the trash")
	return cmd
}

func buildItemsReport(v *vault.Vault, keys vault.Keys, showTrashed bool) (itemsReport, error) {
	items, _ := v.Items()
	report := itemsReport{Items: make([]itemRow, 0, len(items)), Orphans: []orphanRow{}}

	for id, item := range items {
		if item.Trashed && !showTrashed {
			continue
		}
		if item.Category == models.Tombstone {
			continue
		}

		raw, err := v.ItemOverview(keys, id)
		if err != nil {
			return itemsReport{}, err
		}
		overview, err := vault.DecodeOverview(raw)
		if err != nil {
			return itemsReport{}, fmt.Errorf("item %s overview: %w", id, err)
		}

		r := itemRow{
			UUID:        id.String(),
			Category:    item.Category.String(),
			Title:       overview.Title,
			Trashed:     item.Trashed,
			Attachments: len(item.Attachments),
		}
		if item.FolderUUID != nil {
			r.Folder = item.FolderUUID.String()
		}
		report.Items = append(report.Items, r)
	}

	for id, a := range v.Orphans() {
		report.Orphans = append(report.Orphans, orphanRow{UUID: id.String(), ItemUUID: a.ItemUUID.String()})
	}

	slices.SortFunc(report.Items, func(a, b itemRow) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.UUID, b.UUID))
	})
	slices.SortFunc(report.Orphans, func(a, b orphanRow) int {
		return cmp.Compare(a.UUID, b.UUID)
	})
	return report, nil
}
