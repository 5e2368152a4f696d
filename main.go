package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"base58check/address"
	"base58check/config"
	"base58check/util/base58"
	"base58check/util/log"
)

var (
	encodeHex       string
	decodeText      string
	checkEncodeHex  string
	checkDecodeText string
	addrPubKeyHex   string
	prefixHex       string
	prefixLen       int
)

func init() {
	flag.StringVar(&encodeHex, "encode", "", "hex bytes to base58-encode")
	flag.StringVar(&decodeText, "decode", "", "base58 text to decode into hex bytes")
	flag.StringVar(&checkEncodeHex, "check-encode", "", "hex payload to check-encode under -prefix")
	flag.StringVar(&checkDecodeText, "check-decode", "", "base58check text to verify and split")
	flag.StringVar(&addrPubKeyHex, "addr", "", "hex public key to turn into an address")
	flag.StringVar(&prefixHex, "prefix", "00", "hex version prefix for -check-encode")
	flag.IntVar(&prefixLen, "prefixlen", 0, "version prefix length for -check-decode, 0 means config default")
}

func main() {
	flag.Parse()
	config.Load(false)
	log.Init(config.DebugMode())
	log.SetPrefix(config.GetLabel())

	switch {
	case encodeHex != "":
		fmt.Println(base58.Encode(mustHex(encodeHex)))
	case decodeText != "":
		b, err := base58.Decode(decodeText)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(b))
	case checkEncodeHex != "":
		encoded, err := base58.CheckEncodeHex(mustHex(prefixHex), checkEncodeHex)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(encoded)
	case checkDecodeText != "":
		if prefixLen == 0 {
			prefixLen = config.GetPrefixLen()
		}
		prefix, payload, err := base58.CheckDecode(checkDecodeText, prefixLen)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("prefix=%s payload=%s\n", hex.EncodeToString(prefix), hex.EncodeToString(payload))
	case addrPubKeyHex != "":
		fmt.Println(address.FromPublicKey(mustHex(addrPubKeyHex), config.GetAddressVersion()))
	default:
		flag.Usage()
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Fatal(err)
	}

	return b
}
