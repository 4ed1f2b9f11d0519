package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/document"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/nav"
	"github.com/noelruault/emd/internal/render"
	"github.com/noelruault/emd/internal/store"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <blueprint>",
		Short: "Fetch every resource of a blueprint and save the Markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*opts)
			if err != nil {
				return err
			}
			defer a.closeLog()

			coll := a.store.LoadBlueprints()
			i := coll.Find(args[0])
			if i < 0 {
				return fmt.Errorf("blueprint %q: %w", args[0], errs.ErrNotFound)
			}

			labels := i18n.New(a.lang)
			doc, err := assembleBlueprint(cmd.Context(), a.provider, coll.Blueprints[i], a.lang)
			if err != nil {
				return err
			}
			path, err := writeDocument(cmd.Context(), a.provider, a.cfg.Region, a.cfg.OutputDir, doc)
			if err != nil {
				return err
			}
			a.logger.Info().Str("blueprint", args[0]).Str("path", path).Int("skipped", len(doc.Skipped)).Msg("exported")
			return reportExport(cmd.OutOrStdout(), labels, path, doc)
		},
	}
}

func newBlueprintsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "blueprints",
		Short: "List stored blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*opts)
			if err != nil {
				return err
			}
			defer a.closeLog()
			return listBlueprints(cmd.OutOrStdout(), a.store.LoadBlueprints())
		},
	}
}

// assembleBlueprint fetches every entry of bp in stored order, one at a
// time, and assembles the document. Failed entries are skipped. It drives
// the same task protocol the UI uses.
func assembleBlueprint(ctx context.Context, p Provider, bp blueprint.Blueprint, lang i18n.Language) (document.Document, error) {
	md := render.New(lang)
	asm := document.NewAssembler(md, md.Labeler())

	refs := bp.Refs()
	if len(refs) == 0 {
		return asm.Blueprint(bp.Name, nil), nil
	}

	machine := nav.NewMachine(md.Labeler())
	var task nav.Task = nav.LoadBlueprintResources{Index: 0, Refs: refs}
	ticket, ok := machine.BeginTask(task)
	if !ok {
		return document.Document{}, errs.ErrTaskInFlight
	}
	for task != nil {
		cur := task.(nav.LoadBlueprintResources)
		ref := cur.Current()

		fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		d, err := p.Detail(fctx, ref.Region, ref.Kind, ref.ID)
		cancel()
		if err != nil && errors.Is(err, context.Canceled) {
			return document.Document{}, err
		}

		next, done := machine.AdvanceBlueprint(ticket, cur.Index, d, err)
		if next == nil && !done {
			return document.Document{}, fmt.Errorf("blueprint %q: %w", bp.Name, nav.ErrStale)
		}
		task = next
	}
	return asm.Blueprint(bp.Name, machine.BlueprintSections()), nil
}

// writeDocument saves doc under dest, which is a local directory or an
// s3://bucket/prefix destination, and returns where it went.
func writeDocument(ctx context.Context, p Provider, region, dest string, doc document.Document) (string, error) {
	if aws.IsS3URL(dest) {
		loc, err := aws.ParseS3URL(dest, doc.Filename)
		if err != nil {
			return "", err
		}
		return p.Upload(ctx, region, loc, doc.Content)
	}
	return store.WriteDocument(dest, doc.Filename, doc.Content)
}

func reportExport(w io.Writer, labels i18n.Labeler, path string, doc document.Document) error {
	if len(doc.Skipped) > 0 {
		ids := make([]string, len(doc.Skipped))
		for i, r := range doc.Skipped {
			ids[i] = r.Kind.String() + " " + r.Display()
		}
		if _, err := fmt.Fprintln(w, labels.SkippedResources(ids)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, labels.Saved(path))
	return err
}

func listBlueprints(w io.Writer, coll blueprint.Collection) error {
	for _, bp := range coll.Blueprints {
		kinds := make([]string, 0, len(bp.Resources))
		seen := make(map[catalog.Kind]bool)
		for _, r := range bp.Resources {
			if !seen[r.ResourceType] {
				seen[r.ResourceType] = true
				kinds = append(kinds, r.ResourceType.Label())
			}
		}
		if _, err := fmt.Fprintf(w, "%-32s %3d  %s\n", bp.Name, len(bp.Resources), strings.Join(kinds, ", ")); err != nil {
			return err
		}
	}
	return nil
}
