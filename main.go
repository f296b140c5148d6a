package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Yoech/CCLzw/cccompress"
	"github.com/Yoech/CCLzw/cclzw"
	"github.com/Yoech/CCLzw/ccutility"
)

var bCompress bool
var bDecompress bool
var bOverWrite bool
var bCompare bool
var iMode int
var iStartBits uint
var iMaxBits uint
var iWorkerNum int
var sTarget string
var sExt string

func init() {
	flag.BoolVar(&bCompress, "c", false, "Compress")
	flag.BoolVar(&bDecompress, "d", false, "Decompress")
	flag.BoolVar(&bOverWrite, "w", false, "Remove origin files after success")
	flag.BoolVar(&bCompare, "b", false, "Compare every mode on the target file")
	flag.IntVar(&iMode, "m", cccompress.Lzw, "Compress/Decompress mode,0:none 1:gzip 2:zlib 3:bzip2 4:lzw 5:lz4 6:zstd")
	flag.UintVar(&iStartBits, "s", cclzw.DefaultConfig.StartBits, "LZW start bits")
	flag.UintVar(&iMaxBits, "x", cclzw.DefaultConfig.MaxBits, "LZW max bits")
	flag.IntVar(&iWorkerNum, "n", 10, "Worker num for folders")
	flag.StringVar(&sTarget, "t", "", "Target path,stdin to stdout when empty")
	flag.StringVar(&sExt, "e", "", "File ext filter for folders")

	flag.Usage = useAge
}

// useAge .
func useAge() {
	cmdStr := "\n*****************************************\n"
	cmdStr += "Useage:\n"
	cmdStr += "  cclzw -c|-d [-s 9] [-x 16] < in > out\n"
	cmdStr += "  cclzw -c|-d -m mode -t path [-e ext] [-n 10] [-w]\n"
	cmdStr += "  cclzw -b -t file\n"
	cmdStr += "*****************************************\n"
	log.Print(cmdStr)

	flag.PrintDefaults()
}

// stream runs the LZW engine from stdin to stdout.
func stream(cfg cclzw.Config) (cclzw.Stats, error) {
	r := bufio.NewReader(os.Stdin)
	w := bufio.NewWriter(os.Stdout)

	var st cclzw.Stats
	var err error
	if bCompress {
		st, err = cclzw.NewEncoder(cfg).Encode(r, w)
	} else {
		st, err = cclzw.NewDecoder(cfg).Decode(r, w)
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return st, err
}

func compare(filePath string) error {
	src, err := ccutility.ReadBinary(filePath)
	if err != nil {
		return err
	}
	reports, err := cccompress.Compare(src)
	for _, r := range reports {
		log.Printf("Compare[%v].mode[%v].size[%v/%v].ratio[%v].cost[%v].verified[%v]",
			r.Name, r.Mode, r.Size, len(src), r.Ratio, r.Cost, r.Verified)
	}
	return err
}

func main() {
	flag.Parse()

	params := os.Args
	if len(params) == 1 || (!bCompress && !bDecompress && !bCompare) || (bCompress && bDecompress) {
		useAge()
		os.Exit(2)
	}

	cfg := cclzw.Config{StartBits: iStartBits, MaxBits: iMaxBits}
	if err := cfg.Validate(); err != nil {
		log.Printf("Config.err[%v]", err)
		os.Exit(2)
	}
	cccompress.DefaultLzw.StartBits = cfg.StartBits
	cccompress.DefaultLzw.MaxBits = cfg.MaxBits

	if !cccompress.IsValidCompressMode(iMode) {
		log.Printf("Mode[%v].err[%v]", iMode, cccompress.ErrUnknownMode)
		os.Exit(2)
	}

	s := time.Now()
	var total int64
	var err error

	switch {
	case bCompare:
		if sTarget == "" {
			useAge()
			os.Exit(2)
		}
		err = compare(sTarget)
	case sTarget == "":
		var st cclzw.Stats
		st, err = stream(cfg)
		log.Printf("Stream.in[%v].out[%v].codes[%v].entries[%v].width[%v].frozen[%v]",
			st.BytesIn, st.BytesOut, st.Codes, st.Entries, st.Width, st.Frozen)
	default:
		var fi os.FileInfo
		fi, err = os.Stat(sTarget)
		if err != nil {
			log.Printf("Target[%v].err[%v]", sTarget, err)
			os.Exit(1)
		}
		if fi.IsDir() {
			if bCompress {
				total, err = cccompress.CompressFolders(sTarget, sExt, iMode, bOverWrite, iWorkerNum)
			} else {
				total, err = cccompress.DecompressFolders(sTarget, sExt, iMode, bOverWrite, iWorkerNum)
			}
		} else {
			if bCompress {
				total, err = cccompress.CompressFile(sTarget, iMode, bOverWrite)
			} else {
				total, err = cccompress.DecompressFile(sTarget, iMode, bOverWrite)
			}
		}
	}

	cost := time.Since(s).Seconds()
	log.Printf("Total[%v].finished!...cost[%v s].err[%v]", total, cost, err)
	if err != nil {
		os.Exit(1)
	}
}
