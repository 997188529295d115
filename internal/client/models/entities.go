package models

// Airline is a carrier record.
type Airline struct {
	Key string `json:"-"`

	ID    int    `json:"alId"`
	Name  string `json:"alName"`
	Email string `json:"alEmail"`
}

// Airport is an airport record.
type Airport struct {
	Key string `json:"-"`

	ID   int    `json:"apId"`
	Name string `json:"apName"`
	City string `json:"apCity"`
}

// Flight is a scheduled flight record. Times are transmitted as the backend
// formats them; the client does not parse them.
type Flight struct {
	Key string `json:"-"`

	ID               int    `json:"fId"`
	Airline          string `json:"fAirline"`
	DepartureAirport string `json:"fDepartureAirport"`
	ArrivalAirport   string `json:"fArrivalAirport"`
	DepartureTime    string `json:"fDepartureTime"`
	ArrivalTime      string `json:"fArrivalTime"`
	SeatsCount       int    `json:"fSeatsCount"`
	Price            int    `json:"fPrice"`
}

// Ticket is a purchased ticket record. User is the holder's full name, not
// an account reference.
type Ticket struct {
	Key string `json:"-"`

	ID         int    `json:"tId"`
	Flight     int    `json:"tFlight"`
	User       string `json:"tUser"`
	BoughtDate string `json:"tBoughtDate"`
	Class      string `json:"tClass"`
	TotalPrice int    `json:"tTotalPrice"`
	Status     string `json:"tStatus"`
}
