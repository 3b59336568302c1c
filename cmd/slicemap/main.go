package main

import (
	"context"
	"io"
	"os"

	"github.com/flachnetz/slicemap"
	"github.com/flachnetz/slicemap/lib"
	"github.com/flachnetz/slicemap/lib/jsonx"
	"github.com/flachnetz/slicemap/lib/slicex"
	"github.com/flachnetz/slicemap/lib/users"
	"github.com/flachnetz/slicemap/startup_base"
	sl "github.com/flachnetz/slicemap/startup_logrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "main")

type DemoOptions struct {
	Mode      string `long:"mode" default:"square" choice:"square" choice:"promote" choice:"admins" description:"Which example mapping to run."`
	Numbers   []int  `long:"number" description:"Number to square, can be specified multiple times."`
	FailAbove int    `long:"fail-above" default:"0" validate:"gte=0" description:"Let the square transform fail for numbers above this value. Zero disables the check."`
	Users     string `long:"users" default:"-" description:"Json file with a list of users, '-' reads from stdin."`
}

func main() {
	var opts struct {
		Base startup_base.BaseOptions
		Demo DemoOptions
	}

	slicemap.MustParseCommandLine(&opts)

	ctx := sl.WithLogger(context.Background(), log)

	if err := run(ctx, opts.Demo, os.Stdout); err != nil {
		log.WithFields(sl.FieldsOf(err)).WithError(err).Error("Mapping failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts DemoOptions, out io.Writer) error {
	switch opts.Mode {
	case "square":
		return runSquare(ctx, opts, out)

	case "promote", "admins":
		input, err := startup_base.OpenReader(opts.Users)
		if err != nil {
			return errors.WithMessage(err, "open users")
		}

		defer startup_base.Close(input, "close users input")

		if opts.Mode == "promote" {
			return runPromote(ctx, input, out)
		}

		return runAdmins(ctx, input, out)

	default:
		return errors.Errorf("unknown mode %q", opts.Mode)
	}
}

func runSquare(ctx context.Context, opts DemoOptions, out io.Writer) error {
	log := sl.GetLogger(ctx, "square")

	square := func(value int) (int, error) {
		if opts.FailAbove > 0 && value > opts.FailAbove {
			return 0, errors.Errorf("value %d is above %d", value, opts.FailAbove)
		}

		return lib.Square(value), nil
	}

	squares, err := sl.LoggedMapErr(log, opts.Numbers, square)
	if err != nil {
		var transformErr *slicex.TransformError
		if errors.As(err, &transformErr) {
			return sl.WithFields(err, logrus.Fields{
				"index": transformErr.Index,
				"value": opts.Numbers[transformErr.Index],
			})
		}

		return err
	}

	if lower, upper, ok := lib.Bounds(squares); ok {
		log.WithField("min", lower).WithField("max", upper).Infof("Squared %d numbers", len(squares))
	}

	return jsonx.WriteIndented(out, squares)
}

type promoteResult struct {
	Promoted []users.User `json:"promoted"`
	Original []users.User `json:"original"`
}

func runPromote(ctx context.Context, input io.Reader, out io.Writer) error {
	log := sl.GetLogger(ctx, "promote")

	original, err := users.Decode(input)
	if err != nil {
		return usersError(err)
	}

	promoted := sl.LoggedMap(log, original, users.Promote)

	log.Infof("Promoted %d users", len(promoted))
	return jsonx.WriteIndented(out, promoteResult{Promoted: promoted, Original: original})
}

func runAdmins(ctx context.Context, input io.Reader, out io.Writer) error {
	log := sl.GetLogger(ctx, "admins")

	all, err := users.Decode(input)
	if err != nil {
		return usersError(err)
	}

	admins := users.Admins(all)

	log.Infof("Found %d admins in %d users", len(admins), len(all))
	return jsonx.WriteIndented(out, admins)
}

func usersError(err error) error {
	var transformErr *slicex.TransformError
	if errors.As(err, &transformErr) {
		return sl.WithFields(err, logrus.Fields{"index": transformErr.Index})
	}

	return err
}
