package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rotisserie/eris"

	"github.com/tomroth04/ethcal"
	"github.com/tomroth04/ethcal/ethiopic"
	"github.com/tomroth04/ethcal/types"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out    io.Writer
	conv   *ethcal.Converter
	cls    *ethcal.Classifier
	client *ethcal.Client // nil when no api is configured
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  toec -date YYYY-MM-DD                 - convert a gregorian date to the ethiopian calendar")
	fmt.Fprintln(cli.out, "  togc -year Y -month M -day D          - convert an ethiopian date to a gregorian date")
	fmt.Fprintln(cli.out, "  togc -date YYYY-MM-DD                 - same, with the ethiopian date written out")
	fmt.Fprintln(cli.out, "  format -date YYYY-MM-DD -system SYS   - format a date for display (gregorian|ethiopian)")
	fmt.Fprintln(cli.out, "  holidays -year Y [-json]              - list the holidays of a gregorian year")
	fmt.Fprintln(cli.out, "  noclass -date YYYY-MM-DD [-weekend L] - tell whether classes are held on a day")
	fmt.Fprintln(cli.out, "  leap -year Y                          - tell whether an ethiopian year is a leap year")
	fmt.Fprintln(cli.out, "  sync -from YYYY-MM-DD -to YYYY-MM-DD  - load school closures from the api and count class days")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "toec":
		fs := cli.newFlagSet("toec")
		date := fs.String("date", "", "Gregorian date, YYYY-MM-DD")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *date == "" {
			fs.Usage()
			return errHelp
		}
		return cli.toEthiopian(*date)

	case "togc":
		fs := cli.newFlagSet("togc")
		year := fs.Int("year", 0, "Ethiopian year")
		month := fs.Int("month", 0, "Ethiopian month, 13 is Pagume")
		day := fs.Int("day", 0, "Day of the month")
		date := fs.String("date", "", "Ethiopian date, YYYY-MM-DD, instead of -year -month -day")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *date != "" {
			d, err := ethiopic.Parse(*date)
			if err != nil {
				return err
			}
			*year, *month, *day = d.Year(), d.Month(), d.Day()
		}
		if *year == 0 {
			fs.Usage()
			return errHelp
		}
		iso, err := cli.conv.ECToGregorianISO(*year, *month, *day)
		if err != nil {
			return err
		}
		fmt.Fprintln(cli.out, iso)
		return nil

	case "format":
		fs := cli.newFlagSet("format")
		date := fs.String("date", "", "Gregorian date, YYYY-MM-DD")
		system := fs.String("system", string(types.Ethiopian), "Calendar system, gregorian or ethiopian")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *date == "" {
			fs.Usage()
			return errHelp
		}
		sys := types.CalendarSystem(*system)
		if sys != types.Gregorian && sys != types.Ethiopian {
			return eris.Errorf("unknown calendar system %q", *system)
		}
		fmt.Fprintln(cli.out, cli.conv.FormatDateForUI(*date, sys))
		return nil

	case "holidays":
		fs := cli.newFlagSet("holidays")
		year := fs.Int("year", 0, "Gregorian year")
		asJSON := fs.Bool("json", false, "Print the holidays as json")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *year == 0 {
			fs.Usage()
			return errHelp
		}
		return cli.holidays(*year, *asJSON)

	case "noclass":
		fs := cli.newFlagSet("noclass")
		date := fs.String("date", "", "Gregorian date, YYYY-MM-DD")
		weekend := fs.String("weekend", "", "Weekend days overriding the configured ones, e.g. 0,6")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *date == "" {
			fs.Usage()
			return errHelp
		}
		var days []time.Weekday
		if *weekend != "" {
			var err error
			if days, err = ethcal.ParseWeekendDays(*weekend); err != nil {
				return err
			}
		}
		if _, err := types.ParseISODate(*date); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, types.ToJsonStr(cli.cls.IsNoClassDay(*date, days...)))
		return nil

	case "leap":
		fs := cli.newFlagSet("leap")
		year := fs.Int("year", 0, "Ethiopian year")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *year == 0 {
			fs.Usage()
			return errHelp
		}
		fmt.Fprintln(cli.out, cli.conv.IsEthiopianLeapYear(*year))
		return nil

	case "sync":
		fs := cli.newFlagSet("sync")
		from := fs.String("from", "", "First day, YYYY-MM-DD")
		to := fs.String("to", "", "Last day, YYYY-MM-DD")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *from == "" || *to == "" {
			fs.Usage()
			return errHelp
		}
		return cli.sync(*from, *to)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) toEthiopian(date string) error {
	if _, err := types.ParseISODate(date); err != nil {
		return err
	}
	d := cli.conv.GregorianToEthiopian(date)
	fmt.Fprintf(cli.out, "%s (%d %s %d)\n", d, d.Day, ethcal.EthiopianMonthName(d.Month), d.Year)
	return nil
}

func (cli *commandLine) holidays(year int, asJSON bool) error {
	holidays := cli.cls.HolidaysInYear(year)
	if asJSON {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(holidays)
	}
	for _, h := range holidays {
		fmt.Fprintf(cli.out, "%s  %s  %s\n", h.GregorianDate, h.EthiopianDate, h.Name)
	}
	return nil
}

func (cli *commandLine) sync(fromISO, toISO string) error {
	if cli.client == nil {
		return eris.New("no api configured, set ETHCAL_APIBASEURL")
	}
	from, err := types.ParseISODate(fromISO)
	if err != nil {
		return err
	}
	to, err := types.ParseISODate(toISO)
	if err != nil {
		return err
	}

	n, err := cli.client.SyncClosures(context.Background(), cli.cls, from, to)
	if err != nil {
		return err
	}
	count, err := cli.cls.CountClassDays(fromISO, toISO)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d closure days synced, %d class days between %s and %s\n", n, count, fromISO, toISO)
	return nil
}
