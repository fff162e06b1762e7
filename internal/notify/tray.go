package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Tray delivers notifications through the ecotrack-tray companion app. The
// tray writes a lockfile "port|pid|secret" on startup; every delivery
// re-reads it so a restarted tray is picked up without restarting the CLI.
type Tray struct{}

type webhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func NewTray() *Tray {
	return &Tray{}
}

func (t *Tray) Name() string { return "tray" }

func (t *Tray) Enabled() bool { return true }

// Reachable reports whether the tray is currently running. Used by Detect
// at startup.
func (t *Tray) Reachable() error {
	_, _, err := t.endpoint()
	return err
}

func (t *Tray) Notify(text string) error {
	port, secret, err := t.endpoint()
	if err != nil {
		return err
	}
	return push(port, secret, webhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

func (t *Tray) endpoint() (port, secret string, err error) {
	dir, err := trayConfigDir()
	if err != nil {
		return "", "", err
	}
	return readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
}

// trayConfigDir returns the directory the tray app writes its lockfile to.
// The tray's settings.json may relocate it.
func trayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	dir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(dir, "settings.json")
	if data, err := os.ReadFile(settingsPath); err == nil {
		var store struct {
			Settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(data, &store); err == nil {
			if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
				return *store.Settings.LockfileDir, nil
			}
		}
	}

	return dir, nil
}

func readLockfile(path string) (port, secret string, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.New("ecotrack-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port = parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret = parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("ecotrack-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "ecotrack-tray") {
		return "", "", fmt.Errorf("process with PID %d is not ecotrack-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func push(port, secret string, payload webhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-EcoTrack-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
