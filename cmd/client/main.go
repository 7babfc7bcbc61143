package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"harvesttracker/internal/authflow"
	"harvesttracker/internal/models"
)

// Default gateway base URL; can override with HARVEST_GATEWAY env var or
// --server flag.
var serverBaseURL = "http://localhost:3000"

func main() {
	serverFlag := flag.String("server", "", "Override gateway base URL (e.g. https://api.example.com)")
	legacy := flag.Bool("legacy-send", false, "Advance past phone entry even when sending the OTP fails")
	flag.Parse()
	if env := os.Getenv("HARVEST_GATEWAY"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	session := authflow.NewSession(authflow.NewGatewayClient(serverBaseURL))
	session.AdvanceOnSendError = *legacy

	if err := loginFlow(session); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	profile := session.Profile()
	fmt.Printf("Welcome, %s (%s, %s). You are logged in.\n", profile.Name, profile.District, profile.State)
}

func loginFlow(session *authflow.Session) error {
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for session.Step() == authflow.StepPhoneEntry {
		phone := prompt(in, "Phone number (+91): ")
		session.InputPhone(phone)
		if err := session.SubmitPhone(ctx); err != nil {
			fmt.Println("Could not send OTP:", err)
			continue
		}
		fmt.Printf("We've sent a code to +91 %s\n", session.Phone())
	}

	for session.Step() == authflow.StepOTPPending {
		code := prompt(in, "6-digit OTP: ")
		session.InputCode(code)
		ok, err := session.SubmitCode(ctx)
		if err != nil {
			fmt.Println("Could not verify OTP:", err)
			continue
		}
		if !ok {
			fmt.Println("Wrong or expired code, try again.")
		}
	}

	for session.Step() == authflow.StepProfilePending {
		session.SetName(prompt(in, "Full name: "))

		states := models.AllStates()
		for i, s := range states {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
		state := pickState(in, states)
		if err := session.SetState(state); err != nil {
			fmt.Println(err)
			continue
		}

		districts := state.Districts()
		for i, d := range districts {
			fmt.Printf("  %d. %s\n", i+1, d)
		}
		if err := session.SetDistrict(pick(in, "District", districts)); err != nil {
			fmt.Println(err)
			continue
		}

		if err := session.SubmitProfile(); err != nil {
			fmt.Println(err)
		}
	}

	return nil
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		fmt.Println()
		os.Exit(1)
	}
	return strings.TrimSpace(in.Text())
}

func pickState(in *bufio.Scanner, states []models.State) models.State {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	name := pick(in, "State", names)
	state, _ := models.ParseState(name)
	return state
}

// pick reads either a 1-based index or an exact option name.
func pick(in *bufio.Scanner, label string, options []string) string {
	for {
		raw := prompt(in, label+": ")
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
			return options[n-1]
		}
		for _, opt := range options {
			if opt == raw {
				return opt
			}
		}
		fmt.Println("Pick one of the listed options.")
	}
}
