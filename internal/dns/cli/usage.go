package cli

// Usage is the help text printed for -? / --help.
const Usage = `dog - a command-line DNS client

Usage:
  dog [OPTIONS] [--] <arguments>

Examples:
  dog example.net                   Query a domain using default settings
  dog example.net MX                ...looking up MX records instead
  dog example.net MX @1.1.1.1       ...using a specific nameserver instead
  dog example.net MX @1.1.1.1 -T    ...using TCP rather than UDP
  dog -q example.net -t MX -n 1.1.1.1 -T  As above, with explicit arguments

Query options:
  -q, --query=HOST        Host name or domain name to query
  -t, --type=TYPE         Type of the DNS record being queried (A, MX, NS...)
  -n, --nameserver=ADDR   Address of the nameserver to send packets to
      --class=CLASS       Network class of the DNS record being queried (IN, CH, HS)

Sending options:
      --edns=SETTING      Whether to OPT in to EDNS (disable, hide, show)
      --txid=NUMBER       Set the transaction ID of every query to a specific value
  -Z=TWEAKS               Set uncommon protocol-level tweaks (aa, ad, cd, bufsize=N)

Protocol options:
  -U, --udp               Use the DNS protocol over UDP
  -T, --tcp               Use the DNS protocol over TCP
  -S, --tls               Use the DNS-over-TLS protocol
  -H, --https             Use the DNS-over-HTTPS protocol

Output options:
      --color, --colour=WHEN   When to colourise the output (always, automatic, never)
  -J, --json              Display the output as JSON
      --seconds           Do not format durations, display them as seconds
  -1, --short             Short mode: display nothing but the first result
      --time              Print how long the response took to arrive

Meta options:
  -l, --list              List the supported DNS record types
  -v, --verbose           Print further details about the queries
  -V, --version           Print version information
  -?, --help              Print list of command-line options
`
