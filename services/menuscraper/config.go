package menuscraper

// RestaurantSpec is one roster entry from the scraper configuration.
// Which of the identifier fields is meaningful depends on Type.
type RestaurantSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
	// provider specific identifiers
	Id               string `json:"id"`
	Url              string `json:"url"`
	CostNumber       string `json:"costNumber"`
	RestaurantNumber string `json:"restaurantNumber"`
	Language         string `json:"language"`
}

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
	Recipient    string `json:"recipient"`
}

type Config struct {
	Restaurants []RestaurantSpec `json:"restaurants"`
	BackendUrl  string           `json:"backendUrl"`
	// optional, failed submissions are emailed somewhere when set
	Notify *SmtpConfig `json:"notify"`
}
