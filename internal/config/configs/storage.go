package configs

// Storage configures the on-disk plan store. Each saved plan gets its
// own directory under Dir named by its id.
type Storage struct {
	Dir string `env:"DIR" envDefault:"./data"`
	// RenderPDF additionally renders an ait.pdf artifact at save time.
	RenderPDF bool `env:"RENDER_PDF" envDefault:"false"`
}
