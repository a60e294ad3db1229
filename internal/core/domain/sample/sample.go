/*
Package sample defines the core domain entity for a named sample corpus.
*/
package sample

/*
Sample is a named piece of text bundled with the binary, used for demos
and quick smoke runs of the counter. This is a core domain entity.
*/
type Sample struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Text        string `yaml:"text"`
}
