package config

type Model struct {
	Path string `env:"MODEL_PATH" envDefault:"model/model.json"`

	// Version is reported when the artifact does not carry one.
	Version string `env:"MODEL_VERSION" envDefault:"1.0.0"`
}
