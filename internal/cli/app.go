package cli

import (
	"fmt"
	"strings"

	"github.com/tripventure/tripventure-go/internal/auth"
	"github.com/tripventure/tripventure-go/internal/dto"
	"github.com/tripventure/tripventure-go/internal/models"
	"github.com/tripventure/tripventure-go/internal/trips"
)

// App binds the parsed command line to store operations.
type App struct {
	auth  *auth.Store
	trips *trips.Store
}

// Dispatch runs the selected command.
func (a *App) Dispatch(options *Options) error {
	cmd := options.Args.Command
	rest := options.Args.Rest

	switch cmd {
	case "register":
		if len(rest) != 2 {
			return fmt.Errorf("usage: register <email> <password>")
		}
		return a.report(a.auth.Register(rest[0], rest[1]), "registered and logged in as "+rest[0])
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		return a.report(a.auth.Login(rest[0], rest[1]), "logged in as "+rest[0])
	case "logout":
		a.auth.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		if user := a.auth.CurrentUser(); user != nil {
			fmt.Printf("%s (%s)\n", user.Email, user.ID)
		} else {
			fmt.Println("not logged in")
		}
		return nil
	case "list":
		a.printTrips(a.trips.SearchTrips(""))
		return nil
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: search <query>")
		}
		a.printTrips(a.trips.SearchTrips(strings.Join(rest, " ")))
		return nil
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: show <id>")
		}
		trip, err := a.trips.GetTripByID(rest[0])
		if err != nil {
			return err
		}
		a.printTripDetail(trip)
		return nil
	case "mine":
		user := a.auth.CurrentUser()
		if user == nil {
			return trips.ErrUnauthenticated
		}
		a.printTrips(a.trips.GetUserTrips(user.ID))
		return nil
	case "create":
		if len(rest) != 3 {
			return fmt.Errorf("usage: create <name> <province> <description> [--tags t1,t2] [--image url]...")
		}
		trip, err := a.trips.CreateTrip(dto.CreateTripInput{
			Name:        rest[0],
			Province:    rest[1],
			Description: rest[2],
			Images:      options.Images,
			Tags:        splitTags(options.Tags),
		})
		if err != nil {
			return err
		}
		fmt.Printf("created trip %s\n", trip.ID)
		return nil
	case "update":
		if len(rest) != 1 {
			return fmt.Errorf("usage: update <id> [--name n] [--province p] [--description d] [--tags t1,t2] [--image url]...")
		}
		trip, err := a.trips.UpdateTrip(rest[0], dto.UpdateTripInput{
			Name:        options.Name,
			Description: options.Description,
			Province:    options.Province,
			Images:      options.Images,
			Tags:        splitTags(options.Tags),
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated trip %s\n", trip.ID)
		return nil
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		if err := a.trips.DeleteTrip(rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	case "":
		return fmt.Errorf("no command given, see --help")
	default:
		return fmt.Errorf("unknown command %q, see --help", cmd)
	}
}

func (a *App) report(result dto.AuthResult, okMessage string) error {
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	fmt.Println(okMessage)
	return nil
}

func (a *App) printTrips(list []models.Trip) {
	if len(list) == 0 {
		fmt.Println("no trips")
		return
	}
	for _, t := range list {
		fmt.Printf("%-38s %-14s %s\n", t.ID, t.Province, t.Name)
	}
}

func (a *App) printTripDetail(t models.Trip) {
	fmt.Printf("id:       %s\n", t.ID)
	fmt.Printf("name:     %s\n", t.Name)
	fmt.Printf("province: %s\n", t.Province)
	if len(t.Tags) > 0 {
		fmt.Printf("tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if t.MapLocation != nil {
		fmt.Printf("location: %.4f, %.4f\n", t.MapLocation.Lat, t.MapLocation.Lng)
	}
	fmt.Printf("owner:    %s\n", t.UserID)
	fmt.Printf("updated:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))
	for _, img := range t.Images {
		fmt.Printf("image:    %s\n", img)
	}
	fmt.Println()
	fmt.Println(t.ShortDescription)
}

// splitTags turns a comma-separated flag value into a tag list, dropping
// empty entries. Returns nil for an empty flag so updates leave tags alone.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
