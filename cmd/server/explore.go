package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/spf13/cobra"
)

const exploreHelp = `commands:
  <location>     search a location
  save <n>       save result item n
  saved          list saved places for the current location
  history        list recent searches
  help           show this text
  quit           exit`

func exploreCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactive search-and-save session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()

			x := &explorer{
				session: services.NewSearchSession(rt.app.Explorer, userID),
				saved:   rt.app.SavedPlaces,
				history: rt.app.History,
				userID:  userID,
				out:     cmd.OutOrStdout(),
			}
			return x.run(cmd, cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id to save places and record history for")
	return cmd
}

type explorer struct {
	session *services.SearchSession
	saved   *services.SavedPlaceService
	history *services.HistoryService
	userID  string
	out     io.Writer
}

func (x *explorer) run(cmd *cobra.Command, in io.Reader) error {
	ctx := cmd.Context()
	fmt.Fprintln(x.out, exploreHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(x.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		verb, rest, _ := strings.Cut(line, " ")

		switch strings.ToLower(verb) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(x.out, exploreHelp)
		case "save":
			x.save(cmd, rest)
		case "saved":
			view, ok := x.session.View()
			if !ok {
				fmt.Fprintln(x.out, "search for a location first")
				continue
			}
			places, err := x.saved.ListByLocation(ctx, x.userID, view.Key)
			if err != nil {
				x.printErr(err)
				continue
			}
			for _, p := range places {
				fmt.Fprintf(x.out, "  %s (%s)\n", p.PlaceName, p.PlaceType)
			}
			if len(places) == 0 {
				fmt.Fprintln(x.out, "  nothing saved here yet")
			}
		case "history":
			entries, err := x.history.List(ctx, x.userID)
			if err != nil {
				x.printErr(err)
				continue
			}
			for _, h := range entries {
				fmt.Fprintf(x.out, "  %s  %s\n", h.CreatedAt.Local().Format("Jan 2 15:04"), h.Location)
			}
		default:
			view, err := x.session.Search(ctx, line)
			if err != nil {
				x.printNotice(err)
				continue
			}
			x.printView(view)
		}
	}
}

func (x *explorer) save(cmd *cobra.Command, arg string) {
	view, ok := x.session.View()
	if !ok {
		fmt.Fprintln(x.out, "search for a location first")
		return
	}
	items := view.Result.Items()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(items) {
		fmt.Fprintf(x.out, "pick an item between 1 and %d\n", len(items))
		return
	}
	item := items[n-1]
	if err := x.session.Save(cmd.Context(), item); err != nil {
		x.printNotice(err)
		return
	}
	fmt.Fprintf(x.out, "saved %s\n", item.Name)
}

// printNotice shows the notice a failed search or save left on the session
func (x *explorer) printNotice(err error) {
	if n, ok := x.session.ActiveNotice(time.Now()); ok {
		fmt.Fprintf(x.out, "! %s (clears in %s)\n", n.Message, time.Until(n.ExpiresAt).Round(time.Second))
		return
	}
	x.printErr(err)
}

func (x *explorer) printErr(err error) {
	fmt.Fprintf(x.out, "! %s\n", errs.Message(err))
}

func (x *explorer) printView(view services.SearchView) {
	kind := "generated"
	if view.Curated {
		kind = "curated"
	}
	fmt.Fprintf(x.out, "%s (%s)\n", view.Label, kind)

	var section models.PlaceType
	for i, item := range view.Result.Items() {
		if item.Type != section {
			section = item.Type
			fmt.Fprintf(x.out, "%s:\n", sectionTitle(section))
		}
		mark := " "
		if view.Saved.Has(item.Name) {
			mark = "*"
		}
		rating := ""
		if item.Rating != nil {
			rating = fmt.Sprintf(" %.1f", *item.Rating)
		}
		fmt.Fprintf(x.out, "  %2d [%s] %s%s\n", i+1, mark, item.Name, rating)
	}
}

func sectionTitle(t models.PlaceType) string {
	switch t {
	case models.PlaceTypePlace:
		return "Places"
	case models.PlaceTypeRestaurant:
		return "Restaurants"
	case models.PlaceTypeActivity:
		return "Activities"
	}
	return "Foods"
}
