package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title      string     `json:"title"`
	Window     Size       `json:"window"`
	Game       Size       `json:"game"`
	VSync      bool       `json:"vsync"`
	Resizable  bool       `json:"resizable"`
	Icon       string     `json:"icon"`       // Texture name, empty for none
	ClearColor Color      `json:"clearColor"` // Letterbox and world background
	StartScene string     `json:"startScene"`
	Font       FontConfig `json:"font"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FontConfig selects the default UI font.
type FontConfig struct {
	Name string  `json:"name"` // "default" for the embedded Go Regular face
	Size float64 `json:"size"` // Pixel size the face is rasterized at
}

// LevelConfig is the root config for levels/<name>.json
type LevelConfig struct {
	ID     string         `json:"id"`
	Camera *Point         `json:"camera,omitempty"` // Initial camera origin, game center when nil
	World  []EntityConfig `json:"world"`
	UI     []EntityConfig `json:"ui"`
	Text   []TextConfig   `json:"text"`
}

// Point is a position in world units.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// EntityConfig places one textured quad.
type EntityConfig struct {
	Name    string  `json:"name"`
	Texture string  `json:"texture"`
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Depth   int     `json:"depth"`
	Tint    Color   `json:"tint"`
}

// TextConfig places one text run.
type TextConfig struct {
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	Font     string  `json:"font"`     // Empty for the display font
	FontSize float64 `json:"fontSize"` // Zero for the display font size
	Scale    float32 `json:"scale"`    // Zero means 1
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Color    Color   `json:"color"`
	Depth    int     `json:"depth"`
	Centered bool    `json:"centered"`
	Layer    string  `json:"layer"` // "world" or "ui", default "ui"
}
