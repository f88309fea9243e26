package sealed

import (
	"crypto/rand"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 18
	DefaultInteractiveIterations uint64 = 1 << 15
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	AES256KeySize                uint8  = 256 / 8
	AES128KeySize                uint8  = 128 / 8

	MaxIterations   uint64 = DefaultLargeIterations
	MaxRelBlockSize uint8  = 32
	MaxCPUCost      uint8  = 16

	// MaxMemory bounds the scrypt memory (128 * block size * iterations) of any KeyGenerator, 256MiB.
	MaxMemory uint64 = 256 << 20
	// MaxWork bounds iterations * block size * cpu cost, which is what the default long delay settings need.
	MaxWork   uint64 = DefaultLargeIterations * uint64(DefaultRelBlockSize) * uint64(DefaultCpuCost)

	headerLen = 8 + 1 + 1 + 1
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidData     = errors.New("unable to use input data")
)

// Key is an AES key that can be used to seal or open a token.
type Key []byte

// Salt is a slice of secure random bytes that is used with scrypt to generate a Key from a Passphrase.
type Salt []byte

// Passphrase is a human-readable secret shared by peers, used to generate a Key.
type Passphrase []byte

type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	aesKeySize        uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
		bin.Byte(&g.aesKeySize),
	)
}

func (g *KeyGenerator) validate() error {
	if g.iterations <= 1 || g.iterations&(g.iterations-1) != 0 {
		return fmt.Errorf("%w: iterations must be a power of 2 greater than 1", ErrInvalidData)
	}
	if g.iterations > MaxIterations {
		return fmt.Errorf("%w: iterations %d exceeds the maximum of %d", ErrInvalidData, g.iterations, MaxIterations)
	}
	if g.relativeBlockSize < DefaultRelBlockSize || g.relativeBlockSize > MaxRelBlockSize {
		return fmt.Errorf("%w: relative block size %d is out of range", ErrInvalidData, g.relativeBlockSize)
	}
	if g.cpuCost < DefaultCpuCost || g.cpuCost > MaxCPUCost {
		return fmt.Errorf("%w: cpu cost %d is out of range", ErrInvalidData, g.cpuCost)
	}
	if mem := g.memory(); mem > MaxMemory {
		return fmt.Errorf("%w: settings need %d bytes of memory, the maximum is %d", ErrInvalidData, mem, MaxMemory)
	}
	if work := g.work(); work > MaxWork {
		return fmt.Errorf("%w: settings need %d units of work, the maximum is %d", ErrInvalidData, work, MaxWork)
	}
	if g.aesKeySize != AES128KeySize && g.aesKeySize != AES256KeySize {
		return fmt.Errorf("%w: unsupported key size %d", ErrInvalidData, g.aesKeySize)
	}
	return nil
}

// Each setting is capped on its own in validate, so these can't overflow.
func (g *KeyGenerator) memory() uint64 {
	return 128 * uint64(g.relativeBlockSize) * g.iterations
}

func (g *KeyGenerator) work() uint64 {
	return g.iterations * uint64(g.relativeBlockSize) * uint64(g.cpuCost)
}

type GeneratorOpt = func(*KeyGenerator) error

func SetAES256KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES256KeySize
		return nil
	}
}

func SetAES128KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES128KeySize
		return nil
	}
}

// SetLongDelayIterations sets a higher iteration count. This is the default.
// It's much more resistant to passphrase cracking, but every Seal and Open will take noticeably longer.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count. This is appropriate when many addresses are sealed or opened at once, like when exchanging a peer list.
// It's recommended to use longer passphrases with this approach.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		if iterations > MaxIterations {
			return fmt.Errorf("iterations cannot exceed %d", MaxIterations)
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for key generation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost || cost > MaxCPUCost {
			return fmt.Errorf("cpu cost must be between %d and %d", DefaultCpuCost, MaxCPUCost)
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize || size > MaxRelBlockSize {
			return fmt.Errorf("relative block size must be between %d and %d", DefaultRelBlockSize, MaxRelBlockSize)
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator generates a key for AES256KeySize using DefaultLargeIterations.
// Combinations of settings that exceed MaxMemory or MaxWork are rejected, even if each setting is valid.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultLargeIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		aesKeySize:        AES256KeySize,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	if err := gen.validate(); err != nil {
		return nil, err
	}
	return gen, nil
}

func (g *KeyGenerator) key(pass Passphrase, salt Salt) (Key, error) {
	return scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), int(g.aesKeySize))
}

// GenerateKey will generate an AES key and salt using the configuration of the KeyGenerator.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (key Key, salt Salt, err error) {
	if len(pass) == 0 {
		return nil, nil, ErrEmptyPassPhrase
	}
	salt = make(Salt, g.aesKeySize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}
	key, err = g.key(pass, salt)
	return key, salt, err
}

// DeriveKeySalt will recover a key and the original salt at the end of the payload with the given passphrase.
// This doesn't ensure that the given passphrase is the *correct* passphrase used to seal the payload.
func (g *KeyGenerator) DeriveKeySalt(pass Passphrase, data []byte) (key Key, salt Salt, err error) {
	if len(pass) == 0 {
		return nil, nil, ErrEmptyPassPhrase
	}
	if uint64(len(data)) <= uint64(g.aesKeySize) {
		return nil, nil, fmt.Errorf("%w: input data isn't long enough to contain a key salt", ErrInvalidData)
	}
	salt = Salt(data[len(data)-int(g.aesKeySize):])
	key, err = g.key(pass, salt)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}
