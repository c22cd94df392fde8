package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# Hackhub Server configurations

# The name of the server.
# This is the name that will be used in webhook payloads and the API.
name: "{{ .Name }}"

# The HTTP server configuration.
http:
  # The address on which the HTTP server will listen.
  listen_addr: "{{ .HTTP.ListenAddr }}"

  # The path to the TLS private key.
  tls_key_path: "{{ .HTTP.TLSKeyPath }}"

  # The path to the TLS certificate.
  tls_cert_path: "{{ .HTTP.TLSCertPath }}"

  # The public URL of the HTTP server.
  public_url: "{{ .HTTP.PublicURL }}"

  # The cross-origin request settings of the API.
  cors:
    allowed_headers: {{ range .HTTP.CORS.AllowedHeaders }}
      - "{{ . }}"{{ end }}
    allowed_origins: {{ range .HTTP.CORS.AllowedOrigins }}
      - "{{ . }}"{{ end }}
    allowed_methods: {{ range .HTTP.CORS.AllowedMethods }}
      - "{{ . }}"{{ end }}

# The stats server configuration.
stats:
  # The address on which the stats server will listen.
  listen_addr: "{{ .Stats.ListenAddr }}"

# The logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  path: "{{ .Log.Path }}"

# The database configuration.
db:
  # The database driver to use.
  # Valid values are "sqlite" and "postgres".
  driver: "{{ .DB.Driver }}"
  # The database data source name.
  # This is driver specific and can be a file path or connection string.
  # Make sure foreign key support is enabled when using SQLite.
  data_source: "{{ .DB.DataSource }}"

# Bearer token configuration.
auth:
  # The HS256 secret used to sign and verify tokens. Keep this private.
  jwt_secret: "{{ .Auth.JWTSecret }}"
  # The token issuer. Leave empty to accept any issuer.
  issuer: "{{ .Auth.Issuer }}"
  # The default lifetime of tokens issued with "hack token".
  token_ttl: "{{ .Auth.TokenTTL }}"

# Cron job configuration
jobs:
  # How often derived hackathon statuses are refreshed.
  hackathon_status: "{{ .Jobs.HackathonStatus }}"

# Outgoing webhook configuration.
webhook:
  # The per-delivery request timeout.
  timeout: "{{ .Webhook.Timeout }}"
  # The maximum number of concurrent deliveries.
  workers: {{ .Webhook.Workers }}

# In-memory cache configuration.
cache:
  # The maximum number of cached hackathons.
  size: {{ .Cache.Size }}

# Additional admin user IDs.
{{ if .InitialAdmins }}initial_admins:{{ range .InitialAdmins }}
  - "{{ . }}"{{ end }}{{ else }}#initial_admins:
#  - "00000000-0000-0000-0000-000000000000"{{ end }}
`))

func newConfigFile(cfg *Config) string {
	var b bytes.Buffer
	configFileTmpl.Execute(&b, cfg) // nolint: errcheck

	return b.String()
}
