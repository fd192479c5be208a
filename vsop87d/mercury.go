package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Mercury, truncated to the leading published terms.
// Columns are amplitude (rad or AU), phase (rad), frequency (rad per
// Julian millennium).
var mercuryModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 4.40250710144, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.40989414977, Phase: 1.48302034195, Freq: 26087.90314157420},
			{Amp: 0.05046294200, Phase: 4.47785489551, Freq: 52175.80628314840},
			{Amp: 0.00855346844, Phase: 1.16520322459, Freq: 78263.70942472259},
			{Amp: 0.00165590362, Phase: 4.11969163423, Freq: 104351.61256629678},
			{Amp: 0.00034561897, Phase: 0.77930768443, Freq: 130439.51570787099},
			{Amp: 0.00007583476, Phase: 3.71348404924, Freq: 156527.41884944518},
			{Amp: 0.00003559745, Phase: 1.51202675145, Freq: 1109.37855209340},
			{Amp: 0.00001803464, Phase: 4.10333178110, Freq: 5661.33204915220},
			{Amp: 0.00001726011, Phase: 0.35832267096, Freq: 182615.32199101939},
			{Amp: 0.00001589923, Phase: 2.99510423560, Freq: 25028.52121138500},
			{Amp: 0.00001364681, Phase: 4.59918328256, Freq: 27197.28169366760},
			{Amp: 0.00001017332, Phase: 0.88031393824, Freq: 31749.23519072640},
			{Amp: 0.00000714182, Phase: 1.54144862493, Freq: 24978.52458948080},
			{Amp: 0.00000643759, Phase: 5.30266166599, Freq: 21535.94964451540},
			{Amp: 0.00000451137, Phase: 6.04989282259, Freq: 51116.42435295920},
			{Amp: 0.00000404200, Phase: 3.28228953196, Freq: 208703.22513259359},
			{Amp: 0.00000352442, Phase: 5.24156372447, Freq: 20426.57109242200},
			{Amp: 0.00000345213, Phase: 2.79211954198, Freq: 15874.61759536320},
			{Amp: 0.00000343312, Phase: 5.76531885335, Freq: 955.59974160860},
			{Amp: 0.00000339215, Phase: 5.86327825226, Freq: 25558.21217647960},
			{Amp: 0.00000325329, Phase: 1.33674488758, Freq: 53285.18483524180},
			{Amp: 0.00000272948, Phase: 2.49451163975, Freq: 529.69096509460},
			{Amp: 0.00000264336, Phase: 3.91705094013, Freq: 57837.13833230060},
			{Amp: 0.00000259588, Phase: 0.98732774234, Freq: 4551.95349705880},
			{Amp: 0.00000238793, Phase: 0.11343953378, Freq: 1059.38193018920},
			{Amp: 0.00000234831, Phase: 0.26672118217, Freq: 11322.66409830440},
			{Amp: 0.00000216645, Phase: 0.65987207348, Freq: 13521.75144159140},
			{Amp: 0.00000208996, Phase: 2.09178234008, Freq: 47623.85278608960},
			{Amp: 0.00000183359, Phase: 2.62878670784, Freq: 27043.50288318280},
			{Amp: 0.00000181629, Phase: 2.43413502466, Freq: 25661.30495091940},
			{Amp: 0.00000175965, Phase: 4.53636829858, Freq: 51066.42773105500},
			{Amp: 0.00000172642, Phase: 2.45200164173, Freq: 24498.83024629040},
			{Amp: 0.00000142317, Phase: 3.36003948842, Freq: 37410.56723987860},
			{Amp: 0.00000137943, Phase: 0.29098447849, Freq: 10213.28554621100},
			{Amp: 0.00000125219, Phase: 3.72079804425, Freq: 39609.65458316560},
			{Amp: 0.00000118233, Phase: 2.78149786369, Freq: 77204.32749453338},
			{Amp: 0.00000096860, Phase: 6.20398934398, Freq: 234791.12827416189},
		},
		{ // L1
			{Amp: 26088.14706223000, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01131199811, Phase: 6.21874197797, Freq: 26087.90314157420},
			{Amp: 0.00292242298, Phase: 3.04449355541, Freq: 52175.80628314840},
			{Amp: 0.00075775081, Phase: 6.08568821653, Freq: 78263.70942472259},
			{Amp: 0.00019676525, Phase: 2.80965111777, Freq: 104351.61256629678},
			{Amp: 0.00005119883, Phase: 5.79432353574, Freq: 130439.51570787099},
			{Amp: 0.00001336324, Phase: 2.47909947012, Freq: 156527.41884944518},
			{Amp: 0.00000352397, Phase: 5.46729367372, Freq: 182615.32199101939},
			{Amp: 0.00000094351, Phase: 2.17983839810, Freq: 208703.22513259359},
		},
		{ // L2
			{Amp: 0.00053049845, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00016903658, Phase: 4.69072300649, Freq: 26087.90314157420},
			{Amp: 0.00007396711, Phase: 1.34735624154, Freq: 52175.80628314840},
			{Amp: 0.00003018297, Phase: 4.45643539705, Freq: 78263.70942472259},
			{Amp: 0.00001107419, Phase: 1.26226537554, Freq: 104351.61256629678},
			{Amp: 0.00000378173, Phase: 4.32003912205, Freq: 130439.51570787099},
			{Amp: 0.00000122998, Phase: 1.06863546100, Freq: 156527.41884944518},
			{Amp: 0.00000038663, Phase: 4.08016877271, Freq: 182615.32199101939},
			{Amp: 0.00000014898, Phase: 4.63312913711, Freq: 1109.37855209340},
			{Amp: 0.00000011861, Phase: 0.79127515437, Freq: 208703.22513259359},
		},
		{ // L3
			{Amp: 0.00000187960, Phase: 0.03466830117, Freq: 52175.80628314840},
			{Amp: 0.00000142238, Phase: 3.12505452217, Freq: 26087.90314157420},
			{Amp: 0.00000096701, Phase: 3.00378171915, Freq: 78263.70942472259},
			{Amp: 0.00000044254, Phase: 6.01867965826, Freq: 104351.61256629678},
			{Amp: 0.00000035461, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000018275, Phase: 2.78248794406, Freq: 130439.51570787099},
			{Amp: 0.00000007000, Phase: 5.81924313890, Freq: 156527.41884944518},
			{Amp: 0.00000002747, Phase: 2.56997810365, Freq: 182615.32199101939},
		},
		{ // L4
			{Amp: 0.00000114078, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000003247, Phase: 2.02848007619, Freq: 26087.90314157420},
			{Amp: 0.00000002141, Phase: 1.41731803758, Freq: 78263.70942472259},
			{Amp: 0.00000001767, Phase: 4.50137643801, Freq: 52175.80628314840},
			{Amp: 0.00000000660, Phase: 4.50130531825, Freq: 104351.61256629678},
			{Amp: 0.00000000474, Phase: 1.26754178432, Freq: 156527.41884944518},
		},
		{ // L5
			{Amp: 0.00000000877, Phase: 3.14159265359, Freq: 0.00000000000},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.11737528961, Phase: 1.98357498767, Freq: 26087.90314157420},
			{Amp: 0.02388076996, Phase: 5.03738959686, Freq: 52175.80628314840},
			{Amp: 0.01222839532, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00543251810, Phase: 1.79644363964, Freq: 78263.70942472259},
			{Amp: 0.00129778770, Phase: 4.83232503958, Freq: 104351.61256629678},
			{Amp: 0.00031866927, Phase: 1.58088495658, Freq: 130439.51570787099},
			{Amp: 0.00007963301, Phase: 4.60972126127, Freq: 156527.41884944518},
			{Amp: 0.00002014189, Phase: 1.35324164377, Freq: 182615.32199101939},
			{Amp: 0.00000514029, Phase: 4.37835406663, Freq: 208703.22513259359},
			{Amp: 0.00000209471, Phase: 2.02020294153, Freq: 24978.52458948080},
		},
		{ // B1
			{Amp: 0.00429151362, Phase: 3.50169780393, Freq: 26087.90314157420},
			{Amp: 0.00146233668, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00022675295, Phase: 0.01515366880, Freq: 52175.80628314840},
			{Amp: 0.00010894981, Phase: 0.48540174006, Freq: 78263.70942472259},
			{Amp: 0.00006353462, Phase: 3.42943919982, Freq: 104351.61256629678},
			{Amp: 0.00002495743, Phase: 0.16051210665, Freq: 130439.51570787099},
			{Amp: 0.00000855562, Phase: 3.18452433647, Freq: 156527.41884944518},
			{Amp: 0.00000276601, Phase: 6.21020774184, Freq: 182615.32199101939},
			{Amp: 0.00000086233, Phase: 2.95244392576, Freq: 208703.22513259359},
		},
		{ // B2
			{Amp: 0.00011830934, Phase: 4.79065585784, Freq: 26087.90314157420},
			{Amp: 0.00001913516, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00001044801, Phase: 1.21216540536, Freq: 52175.80628314840},
			{Amp: 0.00000266213, Phase: 4.43418336532, Freq: 78263.70942472259},
			{Amp: 0.00000170260, Phase: 1.62255638714, Freq: 104351.61256629678},
			{Amp: 0.00000096101, Phase: 4.80023692017, Freq: 130439.51570787099},
			{Amp: 0.00000044455, Phase: 1.60758267772, Freq: 156527.41884944518},
		},
		{ // B3
			{Amp: 0.00000235423, Phase: 0.35387524604, Freq: 26087.90314157420},
			{Amp: 0.00000160537, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000018904, Phase: 4.36275460261, Freq: 52175.80628314840},
			{Amp: 0.00000006376, Phase: 2.50715381439, Freq: 78263.70942472259},
			{Amp: 0.00000004580, Phase: 6.14257817571, Freq: 104351.61256629678},
			{Amp: 0.00000002554, Phase: 3.12497552681, Freq: 130439.51570787099},
			{Amp: 0.00000001599, Phase: 6.26642412058, Freq: 156527.41884944518},
		},
		{ // B4
			{Amp: 0.00000004328, Phase: 1.74579932115, Freq: 26087.90314157420},
			{Amp: 0.00000001247, Phase: 3.14159265359, Freq: 0.00000000000},
		},
		{ // B5
			{Amp: 0.00000000170, Phase: 1.44747953617, Freq: 26087.90314157420},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 0.39528271651, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.07834131818, Phase: 6.19233722598, Freq: 26087.90314157420},
			{Amp: 0.00795525558, Phase: 2.95989690104, Freq: 52175.80628314840},
			{Amp: 0.00121281764, Phase: 6.01064153797, Freq: 78263.70942472259},
			{Amp: 0.00021921969, Phase: 2.77820093972, Freq: 104351.61256629678},
			{Amp: 0.00004354065, Phase: 5.82894543774, Freq: 130439.51570787099},
			{Amp: 0.00000918228, Phase: 2.59650562598, Freq: 156527.41884944518},
			{Amp: 0.00000289955, Phase: 1.42441936951, Freq: 25028.52121138500},
			{Amp: 0.00000201301, Phase: 5.64724463910, Freq: 182615.32199101939},
			{Amp: 0.00000201472, Phase: 5.59227724202, Freq: 31749.23519072640},
			{Amp: 0.00000141886, Phase: 6.25264202645, Freq: 27197.28169366760},
			{Amp: 0.00000100384, Phase: 3.73435608689, Freq: 21535.94964451540},
			{Amp: 0.00000045405, Phase: 2.71742502119, Freq: 208703.22513259359},
		},
		{ // R1
			{Amp: 0.00217347740, Phase: 4.65617158665, Freq: 26087.90314157420},
			{Amp: 0.00044141826, Phase: 1.42385544001, Freq: 52175.80628314840},
			{Amp: 0.00010094479, Phase: 4.47466326327, Freq: 78263.70942472259},
			{Amp: 0.00002432805, Phase: 1.24226083435, Freq: 104351.61256629678},
			{Amp: 0.00001624367, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000603996, Phase: 4.29303116468, Freq: 130439.51570787099},
			{Amp: 0.00000152851, Phase: 1.06060779072, Freq: 156527.41884944518},
			{Amp: 0.00000039202, Phase: 4.11136751416, Freq: 182615.32199101939},
		},
		{ // R2
			{Amp: 0.00003117867, Phase: 3.08231840294, Freq: 26087.90314157420},
			{Amp: 0.00001245397, Phase: 6.15183316810, Freq: 52175.80628314840},
			{Amp: 0.00000424822, Phase: 2.92583350003, Freq: 78263.70942472259},
			{Amp: 0.00000136126, Phase: 5.97983927257, Freq: 104351.61256629678},
			{Amp: 0.00000042181, Phase: 2.68624586352, Freq: 130439.51570787099},
			{Amp: 0.00000021854, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000012801, Phase: 0.95246087206, Freq: 156527.41884944518},
		},
		{ // R3
			{Amp: 0.00000032676, Phase: 1.67971635359, Freq: 26087.90314157420},
			{Amp: 0.00000024166, Phase: 4.63403168997, Freq: 52175.80628314840},
			{Amp: 0.00000011846, Phase: 1.38983781545, Freq: 78263.70942472259},
			{Amp: 0.00000005078, Phase: 4.43915386344, Freq: 104351.61256629678},
			{Amp: 0.00000001887, Phase: 1.20734065292, Freq: 130439.51570787099},
		},
		{ // R4
			{Amp: 0.00000000394, Phase: 3.46025799998, Freq: 26087.90314157420},
		},
	},
}
