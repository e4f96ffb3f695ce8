package main

import (
	"errors"
	"fmt"

	"record-form/internal/controllers"
	"record-form/internal/logger"
	"record-form/internal/models"
	"record-form/internal/store"

	"github.com/spf13/cobra"
)

// openStore loads the data file. As in the window, a load failure is
// reported once and the command continues with an empty store.
func openStore(cmd *cobra.Command, path string, log logger.Logger) *store.Store {
	s, err := store.Load(path)
	if err != nil {
		log.Error("CLI", err, map[string]interface{}{"path": path})
		fmt.Fprintln(cmd.ErrOrStderr(), controllers.MsgLoadFailed)
	}
	return s
}

func newFindCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find <id>",
		Short: "Show the record stored under an ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.settings(cmd)
			if err != nil {
				return err
			}

			s := openStore(cmd, cfg.DataFile, log)
			rec, err := s.Find(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return errors.New(controllers.MsgNotFound)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rec.Summary())
			return nil
		},
	}
}

func newPutCmd(opts *options) *cobra.Command {
	var rec models.Record

	cmd := &cobra.Command{
		Use:   "put <id>",
		Short: "Store a record, replacing any record with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.settings(cmd)
			if err != nil {
				return err
			}

			s := openStore(cmd, cfg.DataFile, log)
			rec.ID = args[0]

			err = s.Put(rec)
			var verr *store.ValidationError
			switch {
			case errors.As(err, &verr):
				return errors.New(controllers.MsgIDRequired)
			case err != nil:
				log.Error("CLI", err, map[string]interface{}{"id": rec.ID})
				return fmt.Errorf("%s: %w", controllers.MsgSaveFailed, err)
			}

			log.Info("CLI", "record saved", map[string]interface{}{"id": rec.ID, "path": s.Path()})
			fmt.Fprintln(cmd.OutOrStdout(), controllers.MsgSaved)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rec.FullName, "name", "", "full name")
	flags.StringVar(&rec.Gender, "gender", "", "gender (Male or Female)")
	flags.StringVar(&rec.Province, "province", "", "province")
	flags.StringVar(&rec.DateOfBirth, "dob", "", "date of birth, "+models.DateLayout)

	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored record line, ordered by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.settings(cmd)
			if err != nil {
				return err
			}

			s := openStore(cmd, cfg.DataFile, log)
			for _, line := range s.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
