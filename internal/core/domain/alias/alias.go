/*
Package alias defines the alias overlay entry: an extra name for an
existing command, declared outside the command's own definition.
*/
package alias

/*
Alias maps Name onto the registered command Command.
The YAML keys match the overlay file format.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}
