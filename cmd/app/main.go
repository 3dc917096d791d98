package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"adbooking/config"
	adspaceClient "adbooking/internal/domains/adspace/client"
	adspaceModel "adbooking/internal/domains/adspace/model"
	adspaceService "adbooking/internal/domains/adspace/service"
	bookingClient "adbooking/internal/domains/booking/client"
	bookingModel "adbooking/internal/domains/booking/model"
	"adbooking/internal/domains/booking/pricing"
	bookingService "adbooking/internal/domains/booking/service"
	"adbooking/internal/domains/booking/validator"
	"adbooking/shared/logger"
	"adbooking/transport/rest"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	restClient := rest.New(cfg)
	catalog := adspaceService.New(adspaceClient.New(restClient))
	bookings := bookingService.New(bookingClient.New(restClient))

	app := &cli.App{
		Name:  "adbooking",
		Usage: "browse ad spaces and manage booking requests",
		Commands: []*cli.Command{
			spacesCommand(catalog),
			bookingsCommand(cfg, catalog, bookings),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func spacesCommand(catalog adspaceService.Catalog) *cli.Command {
	return &cli.Command{
		Name:  "spaces",
		Usage: "ad-space catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list ad spaces, optionally filtered by city and type",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "city"},
					&cli.StringFlag{Name: "type", Usage: "BILLBOARD, BUS_STOP, MALL_DISPLAY or TRANSIT_AD"},
				},
				Action: func(c *cli.Context) error {
					spaceType := adspaceModel.Type(c.String("type"))
					if spaceType != "" && !spaceType.Valid() {
						return cli.Exit(fmt.Sprintf("unknown ad-space type %q", spaceType), 1)
					}

					catalog.SetFilters(adspaceClient.Filters{
						City: c.String("city"),
						Type: spaceType,
					})

					spaces, err := catalog.Fetch(c.Context)
					if err != nil {
						return err
					}

					for _, space := range spaces {
						fmt.Printf("%s  %-14s %-20s %8.2f/day  %s\n",
							space.UUID, space.Type, space.City, space.PricePerDay, space.Status)
					}

					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "show one ad space",
				ArgsUsage: "UUID",
				Action: func(c *cli.Context) error {
					space, err := catalog.Get(c.Context, c.Args().First())
					if err != nil {
						return err
					}

					fmt.Printf("%s\n%s · %s\n%s\nPrice per day: %.2f\nStatus: %s\n",
						space.Name, space.Type, space.City, space.Address, space.PricePerDay, space.Status)

					return nil
				},
			},
		},
	}
}

func bookingsCommand(cfg *config.Config, catalog adspaceService.Catalog, bookings bookingService.Bookings) *cli.Command {
	return &cli.Command{
		Name:  "bookings",
		Usage: "booking requests",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list booking requests, optionally filtered by status",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Value: string(bookingModel.FilterAll), Usage: "PENDING, APPROVED, REJECTED or ALL"},
				},
				Action: func(c *cli.Context) error {
					filter := bookingModel.StatusFilter(c.String("status"))
					if param := filter.Param(); param != "" && !bookingModel.Status(param).Valid() {
						return cli.Exit(fmt.Sprintf("unknown booking status %q", filter), 1)
					}

					bookings.SetStatusFilter(filter)

					list, err := bookings.List(c.Context)
					if err != nil {
						return err
					}

					for _, b := range list {
						fmt.Printf("%s  %-9s %s -> %s  %8.2f %s  %s\n",
							b.UUID, b.Status, b.StartDate, b.EndDate, b.TotalCost, cfg.App.CurrencySymbol, b.AdSpace.Name)
					}

					return nil
				},
			},
			{
				Name:  "create",
				Usage: "submit a booking request for an ad space",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "space", Required: true, Usage: "ad-space UUID"},
					&cli.StringFlag{Name: "name", Usage: "advertiser name"},
					&cli.StringFlag{Name: "email", Usage: "advertiser email"},
					&cli.StringFlag{Name: "start", Usage: "start date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "end", Usage: "end date (YYYY-MM-DD)"},
				},
				Action: func(c *cli.Context) error {
					space, err := catalog.Get(c.Context, c.String("space"))
					if err != nil {
						return err
					}

					catalog.Select(space)
					defer catalog.ClearSelection()

					draft := bookingModel.Draft{
						AdSpace:         &space,
						AdvertiserName:  c.String("name"),
						AdvertiserEmail: c.String("email"),
						StartDate:       c.String("start"),
						EndDate:         c.String("end"),
					}

					today := time.Now()
					if errs := validator.ValidateDraft(draft, today); !errs.Empty() {
						for _, field := range []string{
							validator.FieldAdvertiserName,
							validator.FieldAdvertiserEmail,
							validator.FieldStartDate,
							validator.FieldEndDate,
						} {
							if msg, ok := errs[field]; ok {
								fmt.Printf("%s: %s\n", field, msg)
							}
						}

						return cli.Exit("booking draft failed validation", 1)
					}

					quote := pricing.ForDraft(draft)
					fmt.Printf("Total cost: %s\n", quote.Display(cfg.App.CurrencySymbol))

					created, err := bookings.Create(c.Context, draft, today)
					if err != nil {
						return err
					}

					fmt.Printf("Booking created with status: %s\n", created.Status)

					return nil
				},
			},
			transitionCommand("approve", bookings),
			transitionCommand("reject", bookings),
		},
	}
}

func transitionCommand(action string, bookings bookingService.Bookings) *cli.Command {
	return &cli.Command{
		Name:      action,
		Usage:     action + " a pending booking request",
		ArgsUsage: "UUID",
		Action: func(c *cli.Context) error {
			// refresh the cache so the PENDING guard sees current server state
			if _, err := bookings.List(c.Context); err != nil {
				return err
			}

			var (
				updated bookingModel.BookingRequest
				err     error
			)

			if action == "approve" {
				updated, err = bookings.Approve(c.Context, c.Args().First())
			} else {
				updated, err = bookings.Reject(c.Context, c.Args().First())
			}

			if err != nil {
				return err
			}

			fmt.Printf("Booking %s is now %s\n", updated.UUID, updated.Status)

			return nil
		},
	}
}
