package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/skywhysales/skyclient/internal/client/models"
)

// RESTClient talks to the SkyWhySales backend over HTTP. It is safe to
// construct once at startup and share.
type RESTClient struct {
	http *resty.Client
}

var _ Client = (*RESTClient)(nil)

// New constructs a RESTClient bound to the backend base URL. Every request
// carries a fresh X-Request-Id so failures can be correlated with backend
// logs.
func New(baseURL string, timeout time.Duration) *RESTClient {
	h := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	h.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &RESTClient{http: h}
}

// execute runs the request and folds the outcome into the package taxonomy:
// transport failures come back wrapped, non-2xx responses as *Error with
// the body carried verbatim.
func (c *RESTClient) execute(req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	if resp.IsError() {
		return nil, &Error{Status: resp.StatusCode(), Payload: string(resp.Body())}
	}
	return resp, nil
}

func (c *RESTClient) getBody(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.execute(c.http.R().SetContext(ctx), resty.MethodGet, url)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *RESTClient) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.getBody(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *RESTClient) postJSON(ctx context.Context, url string, in, out any) error {
	resp, err := c.execute(c.http.R().SetContext(ctx).SetBody(in), resty.MethodPost, url)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *RESTClient) del(ctx context.Context, url string) error {
	_, err := c.execute(c.http.R().SetContext(ctx), resty.MethodDelete, url)
	return err
}

// Authenticate submits the credentials as form data. The backend answers
// with the full account record, password included.
func (c *RESTClient) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	resp, err := c.execute(
		c.http.R().
			SetContext(ctx).
			SetHeader("Accept", "text/plain").
			SetFormData(map[string]string{"login": login, "password": password}),
		resty.MethodPost, "/api/user/auth",
	)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(resp.Body(), &u); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &u, nil
}

func (c *RESTClient) Register(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.postJSON(ctx, "/api/user/register", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.getBody(ctx, "/api/user/GetUsers")
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(u *models.User, key string) { u.Key = key })
}

func (c *RESTClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, fmt.Sprintf("/api/user/GetUser/%d", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) EditUser(ctx context.Context, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.postJSON(ctx, "/api/user/EditUser", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteUser(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/user/DeleteUser/%d", id))
}

func (c *RESTClient) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	body, err := c.getBody(ctx, "/api/airline/GetAirlines")
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(a *models.Airline, key string) { a.Key = key })
}

func (c *RESTClient) GetAirline(ctx context.Context, id int) (*models.Airline, error) {
	var a models.Airline
	if err := c.getJSON(ctx, fmt.Sprintf("/api/airline/GetAirline/%d", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *RESTClient) AddAirline(ctx context.Context, airline models.Airline) (*models.Airline, error) {
	var created models.Airline
	if err := c.postJSON(ctx, "/api/airline/AddAirline", airline, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) EditAirline(ctx context.Context, airline models.Airline) (*models.Airline, error) {
	var updated models.Airline
	if err := c.postJSON(ctx, "/api/airline/EditAirline", airline, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteAirline(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/airline/DeleteAirline/%d", id))
}

func (c *RESTClient) ListAirports(ctx context.Context) ([]models.Airport, error) {
	body, err := c.getBody(ctx, "/api/airport/GetAirports")
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(a *models.Airport, key string) { a.Key = key })
}

func (c *RESTClient) GetAirport(ctx context.Context, id int) (*models.Airport, error) {
	var a models.Airport
	if err := c.getJSON(ctx, fmt.Sprintf("/api/airport/GetAirport/%d", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *RESTClient) AddAirport(ctx context.Context, airport models.Airport) (*models.Airport, error) {
	var created models.Airport
	if err := c.postJSON(ctx, "/api/airport/AddAirport", airport, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) EditAirport(ctx context.Context, airport models.Airport) (*models.Airport, error) {
	var updated models.Airport
	if err := c.postJSON(ctx, "/api/airport/EditAirport", airport, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteAirport(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/airport/DeleteAirport/%d", id))
}

func (c *RESTClient) ListFlights(ctx context.Context) ([]models.Flight, error) {
	body, err := c.getBody(ctx, "/api/flight/GetFlights")
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(f *models.Flight, key string) { f.Key = key })
}

func (c *RESTClient) GetFlight(ctx context.Context, id int) (*models.Flight, error) {
	var f models.Flight
	if err := c.getJSON(ctx, fmt.Sprintf("/api/flight/GetFlight/%d", id), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *RESTClient) AddFlight(ctx context.Context, flight models.Flight) (*models.Flight, error) {
	var created models.Flight
	if err := c.postJSON(ctx, "/api/flight/AddFlight", flight, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) EditFlight(ctx context.Context, flight models.Flight) (*models.Flight, error) {
	var updated models.Flight
	if err := c.postJSON(ctx, "/api/flight/EditFlight", flight, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteFlight(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/flight/DeleteFlight/%d", id))
}

func (c *RESTClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	body, err := c.getBody(ctx, "/api/ticket/GetTickets")
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(t *models.Ticket, key string) { t.Key = key })
}

func (c *RESTClient) ListUserTickets(ctx context.Context, userID int) ([]models.Ticket, error) {
	body, err := c.getBody(ctx, fmt.Sprintf("/api/ticket/GetUserTickets/%d", userID))
	if err != nil {
		return nil, err
	}
	return decodeKeyedList(body, func(t *models.Ticket, key string) { t.Key = key })
}

func (c *RESTClient) GetTicket(ctx context.Context, id int) (*models.Ticket, error) {
	var t models.Ticket
	if err := c.getJSON(ctx, fmt.Sprintf("/api/ticket/GetTicket/%d", id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *RESTClient) AddTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	var created models.Ticket
	if err := c.postJSON(ctx, "/api/ticket/AddTicket", ticket, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) ChangeTicketStatus(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	var updated models.Ticket
	if err := c.postJSON(ctx, "/api/ticket/ChangeTicketStatus", ticket, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
