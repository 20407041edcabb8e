package cli

// Options are the command-line flags and positionals for the tripventure
// demo shell. The first positional selects the command; the flag set is
// shared, with create/update reading the trip-field flags.
type Options struct {
	DataDir     string   `short:"d" long:"data-dir" description:"directory for persisted catalogue data"`
	Tags        string   `long:"tags" description:"comma-separated trip tags (create, update)"`
	Images      []string `long:"image" description:"trip image url, repeatable (create, update)"`
	Name        *string  `long:"name" description:"trip name (update)"`
	Description *string  `long:"description" description:"trip description (update)"`
	Province    *string  `long:"province" description:"trip province (update)"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"register login logout whoami list search show mine create update delete"`
		Rest    []string `positional-arg-name:"args"`
	} `positional-args:"yes"`
}
