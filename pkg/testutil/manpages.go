package testutil

// DogecoindManPage is an excerpt of the help2man generated dogecoind.1
// shipped with the v1.14.4 release archives.
const DogecoindManPage = `.\" DO NOT MODIFY THIS FILE!  It was generated by help2man 1.47.4.
.TH DOGECOIND "1" "June 2021" "dogecoind v1.14.4.0" "User Commands"
.SH NAME
dogecoind \- manual page for dogecoind v1.14.4.0
.SH DESCRIPTION
Dogecoin Core Daemon version v1.14.4.0
.SS "Usage:"
.TP
dogecoind [options]
Start Dogecoin Core Daemon
.SH OPTIONS
.HP
\-?
.IP
Print this help message and exit
.HP
\fB\-version\fR
.IP
Print version and exit
.HP
\fB\-conf=\fR<file>
.IP
Specify configuration file (default: dogecoin.conf)
.HP
\fB\-daemon\fR
.IP
Run in the background as a daemon and accept commands
.HP
\fB\-datadir=\fR<dir>
.IP
Specify data directory
.HP
\fB\-reindex\-chainstate\fR
.IP
Rebuild chain state from the currently indexed blocks
.HP
\fB\-maxconnections=\fR<n>
.IP
Maintain at most <n> connections to peers (default: 125)
.HP
\fB\-paytxfee=\fR<amt>
.IP
Fee (in DOGE/kB) to add to transactions you send (default: 0.00)
.HP
\fB\-help\-debug\fR
.IP
Show all debugging options (usage: \fB\-\-help\fR \fB\-help\-debug\fR)
.HP
\fB\-printtoconsole\fR
.IP
Send trace/debug info to console instead of debug.log file
.SS "Chain selection options:"
.HP
\fB\-testnet\fR
.IP
Use the test chain
.HP
\fB\-rpcuser=\fR<user>
.IP
Username for JSON\-RPC connections
.HP
\fB\-rpcpassword=\fR<pw>
.IP
Password for JSON\-RPC connections
.SH COPYRIGHT
Copyright (C) 2013\-2021 The Dogecoin Core developers
`

// DogecoinTxManPage is an excerpt of dogecoin-tx.1 (v1.14.4).
const DogecoinTxManPage = `.TH DOGECOIN-TX "1" "June 2021" "dogecoin-tx v1.14.4.0" "User Commands"
.SH OPTIONS
.HP
\-?
.IP
This help message
.HP
\fB\-create\fR
.IP
Create new, empty TX.
.HP
\fB\-json\fR
.IP
Select JSON output
.HP
\fB\-testnet\fR
.IP
Use the test chain
`
