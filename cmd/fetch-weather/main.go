package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go-weather/configs"
	"go-weather/internal/application/bootstrap"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// fetch-weather prints the current weather of the city given as arguments, once.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fetch-weather <city name>")
		os.Exit(2)
	}
	city := strings.TrimSpace(strings.Join(os.Args[1:], " "))

	if err := bootstrap.LoadConfig(configs.Env); err != nil {
		log.Fatalf("Fail to load configuration: %v", err)
	}
	defer log.Sync()

	gateway := bootstrap.NewWeatherGateway(configs.Env.ApplicationName)
	weather, err := gateway.FetchDailyWeather(context.Background(), city)
	if err != nil {
		title := msg.GetMessage("common.error")
		switch api.KindOf(err) {
		case api.KindNoData:
			title = msg.GetMessage("error.no-data")
		case api.KindJSONParsing:
			title = msg.GetMessage("error.unknown-city")
		}
		fmt.Fprintf(os.Stderr, "%s: %s (%v)\n", title, msg.GetMessage("error.no-info"), err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(model.NewWeatherResponseDTO(weather, time.Now()))
}
