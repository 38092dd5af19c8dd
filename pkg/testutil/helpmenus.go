package testutil

// DogecoindHelp is an excerpt of `dogecoind -help` (v1.14.5).
const DogecoindHelp = `Dogecoin Core Daemon version v1.14.5.0-7f4fb4a

Usage:
  dogecoind [options]                     Start Dogecoin Core Daemon

Options:

  -?
       Print this help message and exit

  -version
       Print version and exit

  -alertnotify=<cmd>
       Execute command when a relevant alert is received or we see a really
       long fork (%s in cmd is replaced by message)

  -blocknotify=<cmd>
       Execute command when the best block changes (%s in cmd is replaced by
       block hash)

  -conf=<file>
       Specify configuration file (default: dogecoin.conf)

  -daemon
       Run in the background as a daemon and accept commands

  -datadir=<dir>
       Specify data directory

  -dbcache=<n>
       Set database cache size in megabytes (4 to 16384, default: 450)

  -maxmempool=<n>
       Keep the transaction memory pool below <n> megabytes (default: 300)

  -pid=<file>
       Specify pid file (default: dogecoind.pid)

  -prune=<n>
       Reduce storage requirements by enabling pruning (deleting) of old
       blocks.

  -reindex-chainstate
       Rebuild chain state from the currently indexed blocks

  -reindex
       Rebuild chain state and block index from the blk*.dat files on disk

  -txindex
       Maintain a full transaction index, used by the getrawtransaction rpc
       call (default: 0)

Connection options:

  -addnode=<ip>
       Add a node to connect to and attempt to keep the connection open

  -bind=<addr>
       Bind to given address and always listen on it. Use [host]:port notation
       for IPv6

  -listen
       Accept connections from outside (default: 1 if no -proxy or -connect)

  -maxconnections=<n>
       Maintain at most <n> connections to peers (default: 125)

  -port=<port>
       Listen for connections on <port> (default: 22556 or testnet: 44556)

  -torcontrol=<ip>:<port>
       Tor control port to use if onion listening enabled (default:
       127.0.0.1:9051)

  -whitelist=<IP address or network>
       Whitelist peers connecting from the given IP address (e.g. 1.2.3.4) or
       CIDR notated network (e.g. 1.2.3.0/24). Can be specified multiple times.

Wallet options:

  -disablewallet
       Do not load the wallet and disable wallet RPC calls

  -paytxfee=<amt>
       Fee (in DOGE/kB) to add to transactions you send (default: 0.00)

  -sendfreetransactions
       Send transactions as zero-fee transactions if possible (default: 0)

  -walletnotify=<cmd>
       Execute command when a wallet transaction changes (%s in cmd is replaced
       by TxID)

ZeroMQ notification options:

  -zmqpubhashblock=<address>
       Enable publish hash block in <address>

Debugging/Testing options:

  -uacomment=<cmt>
       Append comment to the user agent string

  -debug=<category>
       Output debugging information (default: 0, supplying <category> is
       optional).

  -help-debug
       Show all debugging options (usage: --help -help-debug)

  -logtimestamps
       Prepend debug output with timestamp (default: 1)

  -printtoconsole
       Send trace/debug info to console instead of debug.log file

Chain selection options:

  -testnet
       Use the test chain

  -regtest
       Enter regression test mode, which uses a special chain in which blocks
       can be solved instantly.

RPC server options:

  -server
       Accept command line and JSON-RPC commands

  -rest
       Accept public REST requests (default: 0)

  -rpcbind=<addr>
       Bind to given address to listen for JSON-RPC connections.

  -rpcuser=<user>
       Username for JSON-RPC connections

  -rpcpassword=<pw>
       Password for JSON-RPC connections

  -rpcauth=<userpw>
       Username and hashed password for JSON-RPC connections.

  -rpcport=<port>
       Listen for JSON-RPC connections on <port> (default: 22555 or testnet:
       44555)

  -rpcallowip=<ip>
       Allow JSON-RPC connections from specified source.
`

// DogecoindDebugHelp holds entries only listed with `-help -help-debug`.
const DogecoindDebugHelp = `
  -checkblocks=<n>
       How many blocks to check at startup (default: 6, 0 = all)

  -checklevel=<n>
       How thorough the block verification of -checkblocks is (0-4, default: 3)

  -checkmempool=<n>
       Run checks every <n> transactions (default: 0)

  -dropmessagestest=<n>
       Randomly drop 1 of every <n> network messages

  -limitancestorcount=<n>
       Do not accept transactions if number of in-mempool ancestors is <n> or
       more (default: 25)

  -mocktime=<n>
       Replace actual time with <n> seconds since epoch (default: 0)

  -maxtipage=<n>
       Maximum tip age in seconds to consider node in initial block download
       (default: 86400)

  -acceptnonstdtxn
       Relay and mine "non-standard" transactions (testnet/regtest only;
       default: 1)

  -rpcworkqueue=<n>
       Set the depth of the work queue to service RPC calls (default: 16)
`

// DogecoinCLIHelp is an excerpt of `dogecoin-cli -help` (v1.14.5).
const DogecoinCLIHelp = `Dogecoin Core RPC client version v1.14.5.0-7f4fb4a

Usage:
  dogecoin-cli [options] <command> [params]  Send command to Dogecoin Core
  dogecoin-cli [options] -named <command> [name=value] ... Send command to Dogecoin Core (with named arguments)
  dogecoin-cli [options] help                List commands
  dogecoin-cli [options] help <command>      Get help for a command

Options:

  -?
       This help message

  -conf=<file>
       Specify configuration file (default: dogecoin.conf)

  -datadir=<dir>
       Specify data directory

Chain selection options:

  -testnet
       Use the test chain

  -regtest
       Enter regression test mode.

  -named
       Pass named instead of positional arguments (default: false)

  -rpcconnect=<ip>
       Send commands to node running on <ip> (default: 127.0.0.1)

  -rpcport=<port>
       Connect to JSON-RPC on <port> (default: 22555 or testnet: 44555)

  -rpcwait
       Wait for RPC server to start

  -rpcuser=<user>
       Username for JSON-RPC connections

  -rpcpassword=<pw>
       Password for JSON-RPC connections

  -rpcclienttimeout=<n>
       Timeout during HTTP requests (default: 900)

  -stdin
       Read extra arguments from standard input, one per line until EOF/Ctrl-D
       (recommended for sensitive information such as passphrases)
`

// DogecoinTxHelp is an excerpt of `dogecoin-tx -help` (v1.14.5).
const DogecoinTxHelp = `Dogecoin Core dogecoin-tx utility version v1.14.5.0-7f4fb4a

Usage:
  dogecoin-tx [options] <hex-tx> [commands]  Update hex-encoded dogecoin transaction
  dogecoin-tx [options] -create [commands]   Create hex-encoded dogecoin transaction

Options:

  -?
       This help message

  -create
       Create new, empty TX.

  -json
       Select JSON output

  -txid
       Output only the hex-encoded transaction id of the resultant transaction.

Chain selection options:

  -testnet
       Use the test chain

  -regtest
       Enter regression test mode.

Commands:
  delin=N
       Delete input N from TX

  outaddr=VALUE:ADDRESS
       Add address-based output to TX
`
