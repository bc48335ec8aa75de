package server

import (
	"encoding/json"
	"net/http"
)

// GreetingMessage is the only message the server ever sends.
const GreetingMessage = "Docker is easy 🐳"

// Greeting is the JSON document returned by the greeting route.
type Greeting struct {
	Message string `json:"message"`
}

var greetingBody = mustMarshal(Greeting{Message: GreetingMessage})

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// GreetingBody returns a copy of the serialized greeting.
func GreetingBody() []byte {
	out := make([]byte, len(greetingBody))
	copy(out, greetingBody)
	return out
}

// GreetingHandler writes the fixed greeting with status 200.
func GreetingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(greetingBody)
}
