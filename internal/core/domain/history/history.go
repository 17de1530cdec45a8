/*
Package history defines entities related to the shell's input history.
*/
package history

/*
CommandFrequency represents an input line and how often it was entered.
*/
type CommandFrequency struct {
	Command string
	Count   int
}
